package dicsort

import (
	"github.com/msnoigrs/dicsort/dictionary"
)

type Settings interface {
	GetBaseConfig() *BaseConfig
}

type BaseConfig struct {
	// Alphabet lists the symbols in collation order.
	Alphabet  []string
	Delimiter rune
	Order     dictionary.Order
	Strategy  dictionary.Strategy
	// Strict rejects records that have no delimiter.
	Strict bool
}

type PluginMaker interface {
	GetHeadwordPluginArray(f MakeHeadwordPluginFunc) ([]HeadwordPlugin, error)
}

type Plugin interface {
	GetConfigStruct() interface{}
}

type MakeHeadwordPluginFunc func(n string) HeadwordPlugin

func DefMakeHeadwordPlugin(k string) HeadwordPlugin {
	switch k {
	case "DefaultHeadwordPlugin":
		return NewDefaultHeadwordPlugin(nil)
	case "EquivalentSymbolPlugin":
		return NewEquivalentSymbolPlugin(nil)
	}
	return nil
}

// HeadwordPlugin rewrites the collation key of a record. The record itself
// is written out unchanged.
type HeadwordPlugin interface {
	Plugin
	SetUp() error
	Rewrite(key []byte) []byte
}

// RewriteKey runs key through every plugin in order.
func RewriteKey(plugins []HeadwordPlugin, key []byte) []byte {
	for _, plugin := range plugins {
		key = plugin.Rewrite(key)
	}
	return key
}
