package dicsort

import (
	"fmt"
	"unicode/utf8"
)

type EquivalentSymbolPluginConfig struct {
	Symbols           *[]string
	ReplacementSymbol *string
	// Collapse turns a run of equivalent symbols into one replacement.
	Collapse bool
}

// EquivalentSymbolPlugin makes a set of symbols collate as one, for
// instance the apostrophe variants ’ ʼ ' in transliterated headwords.
type EquivalentSymbolPlugin struct {
	config            *EquivalentSymbolPluginConfig
	symbolMap         map[rune]bool
	replacementSymbol []byte
	collapse          bool
}

func NewEquivalentSymbolPlugin(config *EquivalentSymbolPluginConfig) *EquivalentSymbolPlugin {
	if config == nil {
		config = &EquivalentSymbolPluginConfig{}
	}
	return &EquivalentSymbolPlugin{
		config:    config,
		symbolMap: map[rune]bool{},
	}
}

func (p *EquivalentSymbolPlugin) GetConfigStruct() interface{} {
	if p.config == nil {
		p.config = &EquivalentSymbolPluginConfig{}
	}
	return p.config
}

func (p *EquivalentSymbolPlugin) SetUp() error {
	if p.config == nil || p.config.Symbols == nil || len(*p.config.Symbols) == 0 {
		return fmt.Errorf("EquivalentSymbolPlugin: symbols is not specified")
	}
	if p.config.ReplacementSymbol == nil {
		return fmt.Errorf("EquivalentSymbolPlugin: replacementSymbol is not specified")
	}
	if p.symbolMap == nil {
		p.symbolMap = map[rune]bool{}
	}
	for _, s := range *p.config.Symbols {
		r, _ := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return fmt.Errorf("EquivalentSymbolPlugin: %q is not a valid symbol", s)
		}
		p.symbolMap[r] = true
	}
	p.replacementSymbol = []byte(*p.config.ReplacementSymbol)
	p.collapse = p.config.Collapse
	p.config = nil
	return nil
}

func (p *EquivalentSymbolPlugin) Rewrite(key []byte) []byte {
	ret := make([]byte, 0, len(key))
	inRun := false
	for i := 0; i < len(key); {
		r, width := utf8.DecodeRune(key[i:])
		if r != utf8.RuneError && p.symbolMap[r] {
			if !inRun || !p.collapse {
				ret = append(ret, p.replacementSymbol...)
			}
			inRun = true
		} else {
			ret = append(ret, key[i:i+width]...)
			inRun = false
		}
		i += width
	}
	return ret
}
