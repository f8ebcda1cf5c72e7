package dicsort

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/msnoigrs/dicsort/alphabet"
	"github.com/msnoigrs/dicsort/data"
	"github.com/msnoigrs/dicsort/dictionary"
	"gopkg.in/yaml.v3"
)

type SettingsJSON struct {
	BaseConfig
	path           string
	headwordPlugin []json.RawMessage
}

func NewSettingsJSON() *SettingsJSON {
	return &SettingsJSON{
		BaseConfig: BaseConfig{
			Delimiter: dictionary.DefaultDelimiter,
		},
	}
}

// DefaultSettings returns the settings embedded in the data package.
func DefaultSettings() (*SettingsJSON, error) {
	f, err := data.Assets.Open("settings.json")
	if err != nil {
		return nil, fmt.Errorf("%s: (data.Assets)settings.json", err)
	}
	defer f.Close()

	settings := NewSettingsJSON()
	err = settings.ParseSettingsJSON("", f)
	if err != nil {
		return nil, fmt.Errorf("(data.Assets)settings.json: %s", err)
	}
	return settings, nil
}

func (settings *SettingsJSON) GetBaseConfig() *BaseConfig {
	return &settings.BaseConfig
}

// ParseSettingsFile reads settings from path, as YAML when the extension
// is .yaml or .yml and as JSON otherwise. Values present in the file
// override the current ones.
func (settings *SettingsJSON) ParseSettingsFile(path string) error {
	fd, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer fd.Close()

	defpath := filepath.Dir(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = settings.ParseSettingsYAML(defpath, fd)
	default:
		err = settings.ParseSettingsJSON(defpath, fd)
	}
	if err != nil {
		return fmt.Errorf("%s: %s", path, err)
	}
	return nil
}

// ParseSettingsYAML accepts the same document as ParseSettingsJSON written
// in YAML.
func (settings *SettingsJSON) ParseSettingsYAML(defpath string, reader io.Reader) error {
	var doc interface{}
	decoder := yaml.NewDecoder(reader)
	err := decoder.Decode(&doc)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return settings.ParseSettingsJSON(defpath, strings.NewReader(string(b)))
}

func (settings *SettingsJSON) ParseSettingsJSON(defpath string, reader io.Reader) error {
	internalBaseConfig := &struct {
		Path           *string
		Alphabet       *string
		Symbols        *[]string
		Delimiter      *string
		Order          *string
		Strategy       *string
		Strict         *bool
		HeadwordPlugin *[]json.RawMessage
	}{}

	decoder := json.NewDecoder(reader)
	err := decoder.Decode(internalBaseConfig)
	if err != nil {
		return err
	}
	if internalBaseConfig.Path == nil {
		settings.path = defpath
	} else {
		settings.path = *internalBaseConfig.Path
	}
	if internalBaseConfig.Alphabet != nil && internalBaseConfig.Symbols != nil {
		return errors.New("alphabet and symbols are mutually exclusive")
	}
	if internalBaseConfig.Alphabet != nil {
		symbols := make([]string, 0, utf8.RuneCountInString(*internalBaseConfig.Alphabet))
		for _, r := range *internalBaseConfig.Alphabet {
			symbols = append(symbols, string(r))
		}
		settings.Alphabet = symbols
	}
	if internalBaseConfig.Symbols != nil {
		settings.Alphabet = append([]string(nil), *internalBaseConfig.Symbols...)
	}
	if internalBaseConfig.Delimiter != nil {
		d := *internalBaseConfig.Delimiter
		if utf8.RuneCountInString(d) != 1 {
			return fmt.Errorf("delimiter %q must be a single character", d)
		}
		settings.Delimiter, _ = utf8.DecodeRuneInString(d)
	}
	if internalBaseConfig.Order != nil {
		settings.Order, err = dictionary.ParseOrder(*internalBaseConfig.Order)
		if err != nil {
			return err
		}
	}
	if internalBaseConfig.Strategy != nil {
		settings.Strategy, err = dictionary.ParseStrategy(*internalBaseConfig.Strategy)
		if err != nil {
			return err
		}
	}
	if internalBaseConfig.Strict != nil {
		settings.Strict = *internalBaseConfig.Strict
	}
	if internalBaseConfig.HeadwordPlugin != nil {
		settings.headwordPlugin = *internalBaseConfig.HeadwordPlugin
	}
	return nil
}

// NewAlphabet builds the configured alphabet, falling back to
// alphabet.Default when none is configured.
func (config *BaseConfig) NewAlphabet() (*alphabet.Alphabet, error) {
	if len(config.Alphabet) == 0 {
		return alphabet.FromString(alphabet.Default)
	}
	return alphabet.New(config.Alphabet)
}

func (settings *SettingsJSON) getPath(path string) string {
	if path == "" || filepath.IsAbs(path) || settings.path == "" {
		return path
	}
	return filepath.Join(settings.path, path)
}

func (settings *SettingsJSON) GetHeadwordPluginArray(makeproc MakeHeadwordPluginFunc) ([]HeadwordPlugin, error) {
	ret := []HeadwordPlugin{}
	pname := &struct {
		Class *string
		Name  *string
	}{}
	for _, raw := range settings.headwordPlugin {
		pname.Class, pname.Name = nil, nil
		err := json.Unmarshal(raw, pname)
		if err != nil {
			return ret, err
		}
		var name string
		if pname.Class != nil {
			name = *pname.Class
		}
		if pname.Name != nil {
			name = *pname.Name
		}
		plugin := makeproc(name)
		if plugin == nil {
			return ret, fmt.Errorf("HeadwordPlugin: %s is unknown", name)
		}
		err = json.Unmarshal(raw, plugin.GetConfigStruct())
		if err != nil {
			return ret, err
		}
		if pr, ok := plugin.(pathResolver); ok {
			pr.resolvePaths(settings.getPath)
		}
		ret = append(ret, plugin)
	}
	return ret, nil
}

// pathResolver is implemented by plugins whose configuration names files
// relative to the settings file.
type pathResolver interface {
	resolvePaths(getPath func(string) string)
}
