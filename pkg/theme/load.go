package theme

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/winesheet/pkg/errors"
)

// Load reads a theme file. A file may set `base` to a built-in theme name
// and override only the keys it lists; without a base every key must be
// given. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "theme file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}
	t, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "theme %s", path)
	}
	return t, nil
}

// Parse decodes a theme from TOML text. See [Load].
func Parse(text string) (*Theme, error) {
	var head struct {
		Base string `toml:"base"`
	}
	if _, err := toml.Decode(text, &head); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}

	t := &Theme{}
	if head.Base != "" {
		base, err := Builtin(head.Base)
		if err != nil {
			return nil, err
		}
		t = base
	}

	md, err := toml.Decode(text, t)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidTheme, "unknown theme keys: %s", strings.Join(keys, ", "))
	}
	if !md.IsDefined("name") {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "theme name is required")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode writes t as TOML. The output loads back with [Parse].
func Encode(t *Theme) (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(t); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode theme %s", t.Name)
	}
	return b.String(), nil
}
