package dicsort

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msnoigrs/dicsort/data"
	"github.com/msnoigrs/dicsort/internal/lnreader"
	"golang.org/x/text/unicode/norm"
)

type DefaultHeadwordPluginConfig struct {
	RewriteDef string
	// Normalize is one of NFC, NFD, NFKC, NFKD or none. NFC when unset.
	Normalize *string
	Lowercase bool
}

type DefaultHeadwordPlugin struct {
	config             *DefaultHeadwordPluginConfig
	rewriteDef         string
	form               norm.Form
	normalize          bool
	lowercase          bool
	ignoreLowercaseMap map[rune]bool
	keyLengths         map[rune]int
	replaceCharMap     map[string][]byte
}

func NewDefaultHeadwordPlugin(config *DefaultHeadwordPluginConfig) *DefaultHeadwordPlugin {
	if config == nil {
		config = &DefaultHeadwordPluginConfig{}
	}
	return &DefaultHeadwordPlugin{
		config:             config,
		ignoreLowercaseMap: map[rune]bool{},
		keyLengths:         map[rune]int{},
		replaceCharMap:     map[string][]byte{},
	}
}

func (p *DefaultHeadwordPlugin) GetConfigStruct() interface{} {
	if p.config == nil {
		p.config = &DefaultHeadwordPluginConfig{}
	}
	return p.config
}

func (p *DefaultHeadwordPlugin) resolvePaths(getPath func(string) string) {
	if p.config != nil {
		p.config.RewriteDef = getPath(p.config.RewriteDef)
	}
}

func parseNormalizationForm(s string) (norm.Form, bool, error) {
	switch strings.ToUpper(s) {
	case "NFC", "":
		return norm.NFC, true, nil
	case "NFD":
		return norm.NFD, true, nil
	case "NFKC":
		return norm.NFKC, true, nil
	case "NFKD":
		return norm.NFKD, true, nil
	case "NONE":
		return norm.NFC, false, nil
	}
	return norm.NFC, false, fmt.Errorf("%s is invalid normalization form", s)
}

func (p *DefaultHeadwordPlugin) SetUp() error {
	if p.config == nil {
		p.config = &DefaultHeadwordPluginConfig{}
	}
	if p.rewriteDef == "" {
		p.rewriteDef = p.config.RewriteDef
	}
	var formName string
	if p.config.Normalize != nil {
		formName = *p.config.Normalize
	}
	form, normalize, err := parseNormalizationForm(formName)
	if err != nil {
		return fmt.Errorf("DefaultHeadwordPlugin: %s", err)
	}
	p.form = form
	p.normalize = normalize
	p.lowercase = p.config.Lowercase
	p.config = nil
	if p.ignoreLowercaseMap == nil {
		p.ignoreLowercaseMap = map[rune]bool{}
	}
	if p.keyLengths == nil {
		p.keyLengths = map[rune]int{}
	}
	if p.replaceCharMap == nil {
		p.replaceCharMap = map[string][]byte{}
	}
	return p.readRewriteLists(p.rewriteDef)
}

func (p *DefaultHeadwordPlugin) getKeyLength(key rune, def int) int {
	l, ok := p.keyLengths[key]
	if !ok {
		return def
	}
	return l
}

// Rewrite normalizes key, then applies the replacement list and, when
// configured, lowercases every character not listed as ignored.
func (p *DefaultHeadwordPlugin) Rewrite(key []byte) []byte {
	if p.normalize && !p.form.IsNormal(key) {
		key = p.form.Bytes(key)
	}
	ret := make([]byte, 0, len(key))
TEXTLOOP:
	for i := 0; i < len(key); {
		original, width := utf8.DecodeRune(key[i:])
		// 1. replace char
		for l := minInt(p.getKeyLength(original, 0), len(key)-i); l >= width; l-- {
			replace, ok := p.replaceCharMap[string(key[i:i+l])]
			if ok {
				ret = append(ret, replace...)
				i += l
				continue TEXTLOOP
			}
		}

		// 2. capital letter -> small
		if p.lowercase && !p.ignoreLowercaseMap[original] && original != utf8.RuneError {
			ret = utf8.AppendRune(ret, unicode.ToLower(original))
		} else {
			ret = append(ret, key[i:i+width]...)
		}
		i += width
	}
	return ret
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (p *DefaultHeadwordPlugin) readRewriteLists(rewriteDef string) error {
	var rewriteDefReader io.Reader
	if rewriteDef != "" {
		rewriteDefFd, err := os.OpenFile(rewriteDef, os.O_RDONLY, 0644)
		if err != nil {
			return fmt.Errorf("DefaultHeadwordPlugin: %s: %s", err, rewriteDef)
		}
		defer rewriteDefFd.Close()
		rewriteDefReader = rewriteDefFd
	} else {
		rewriteDefF, err := data.Assets.Open("rewrite.def")
		if err != nil {
			return fmt.Errorf("DefaultHeadwordPlugin: %s: (data.Assets)rewrite.def", err)
		}
		defer rewriteDefF.Close()
		rewriteDefReader = rewriteDefF
	}

	r := lnreader.NewLineNumberReader(rewriteDefReader)
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("DefaultHeadwordPlugin: %s", err)
		}
		if lnreader.IsSkipLine(line) {
			continue
		}
		cols := strings.Fields(string(line))
		if len(cols) == 1 {
			// ignored lowercase list
			key := []rune(cols[0])
			if len(key) != 1 {
				return fmt.Errorf("DefaultHeadwordPlugin: %s is not a single character at line %d", cols[0], r.NumLine)
			}
			p.ignoreLowercaseMap[key[0]] = true
		} else if len(cols) == 2 {
			// replace char list
			from := cols[0]
			if p.normalize {
				from = p.form.String(from)
			}
			_, ok := p.replaceCharMap[from]
			if ok {
				return fmt.Errorf("DefaultHeadwordPlugin: %s is already defined at line %d", cols[0], r.NumLine)
			}
			to := cols[1]
			if p.normalize {
				to = p.form.String(to)
			}
			first, _ := utf8.DecodeRuneInString(from)
			if p.getKeyLength(first, -1) < len(from) {
				// store the longest key length
				p.keyLengths[first] = len(from)
			}
			p.replaceCharMap[from] = []byte(to)
		} else {
			return fmt.Errorf("DefaultHeadwordPlugin: invalid format at line %d", r.NumLine)
		}
	}
	return nil
}
