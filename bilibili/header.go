package bilibili

import "net/http"

const (
	userAgent       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	origin          = "https://www.bilibili.com"
	secChUa         = `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`
	secChUaPlatform = `"macOS"`
)

// Headers builds the browser-identity header set sent with every API call.
// The cookie header is always present; an empty sessdata yields "SESSDATA=".
func Headers(sessdata, referer string) http.Header {
	h := make(http.Header)

	h.Set("User-Agent", userAgent)
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	h.Set("Accept-Encoding", "gzip, deflate, br")
	h.Set("Referer", referer)
	h.Set("Origin", origin)
	h.Set("Cookie", "SESSDATA="+sessdata)
	h.Set("Sec-Ch-Ua", secChUa)
	h.Set("Sec-Ch-Ua-Mobile", "?0")
	h.Set("Sec-Ch-Ua-Platform", secChUaPlatform)
	h.Set("Sec-Fetch-Dest", "empty")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Sec-Fetch-Site", "same-site")
	h.Set("DNT", "1")

	return h
}
