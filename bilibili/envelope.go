package bilibili

import "github.com/samber/lo"

// envelope is the wrapper every API endpoint responds with.
type envelope[T any] struct {
	Code    int     `json:"code"`
	Message *string `json:"message"`
	Data    *T      `json:"data"`
}

func (e *envelope[T]) unwrap() (*T, error) {
	if e.Code != 0 {
		msg := lo.FromPtr(e.Message)
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &Error{Kind: APIError, Message: msg}
	}

	if e.Data == nil {
		return nil, &Error{Kind: MissingData}
	}

	return e.Data, nil
}
