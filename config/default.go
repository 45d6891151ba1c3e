package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable bound to the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Env:         f.Env(),
	})
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.ResolveMode, "single", "Playback strategy.\nsingle: one MP4 file, CDN host rewritten\nmulti: prefer adaptive (DASH) streams, fall back to MP4")
	register(key.ResolveQuality, 80, "Requested quality tier (qn). 80 is 1080p")
	register(key.ResolveTimeout, 15, "Timeout in seconds for each upstream call")
	register(key.APIBaseURL, "https://api.bilibili.com", "Base URL of the metadata and playback APIs")
	register(key.APISiteURL, "https://www.bilibili.com", "Base URL used to build the Referer header")
	register(key.MirrorHost, "upos-sz-mirror08c.bilivideo.com", "Host that replaces third-party edge hosts in single mode")
	register(key.MirrorLabel, "mirror08c", "Label that replaces the deprecated mirror label in single mode")
	register(key.NetworkFingerprint, "standard", "TLS fingerprint for outbound requests.\nAvailable options are: standard, chrome, profile")
	register(key.AuthKeyring, true, "Read the SESSDATA token from the OS keyring when no flag or env var is given")
	register(key.HistoryRemember, true, "Remember resolved video identifiers for shell completion")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release when running the version command")
	register(key.ServerPort, 8080, "Port `kipdayo serve` listens on")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
