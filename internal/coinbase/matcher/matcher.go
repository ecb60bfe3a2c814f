// Package matcher attributes decoded coinbase scripts to mining pools.
package matcher

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/coinbase-pool-attributor/internal/coinbase/model"
)

// Matcher searches decoded text for pool tag names in configuration order.
type Matcher struct {
	tags    []model.PoolTag
	lowered []string
}

// New prepares a Matcher for tags. The order of tags is the tie-break order.
func New(tags []model.PoolTag) *Matcher {
	m := &Matcher{
		tags:    append([]model.PoolTag(nil), tags...),
		lowered: make([]string, len(tags)),
	}
	for i, tag := range tags {
		m.lowered[i] = strings.ToLower(tag.Name)
	}
	return m
}

// Attribute tries the UTF-8 view first and falls back to the ASCII view.
func (m *Matcher) Attribute(decoded model.DecodedScript) model.Attribution {
	views := []struct {
		view model.MatchView
		text string
	}{
		{model.ViewUTF8, decoded.UTF8},
		{model.ViewASCII, decoded.ASCII},
	}
	for _, v := range views {
		if name, link := m.MatchText(v.text); name != "" {
			return model.Attribution{PoolName: name, PoolLink: link, View: v.view}
		}
	}
	return model.Attribution{View: model.ViewNone}
}

// MatchText returns the name and link of the first tag found in value, or two empty strings.
// Non-string values are formatted first; nil matches nothing.
func (m *Matcher) MatchText(value any) (string, string) {
	tag, ok := m.match(text(value))
	if !ok {
		return "", ""
	}
	return tag.Name, tag.Link
}

func (m *Matcher) match(text string) (model.PoolTag, bool) {
	if text == "" {
		return model.PoolTag{}, false
	}
	text = strings.ToLower(text)
	for i, name := range m.lowered {
		if strings.Contains(text, name) {
			return m.tags[i], true
		}
	}
	return model.PoolTag{}, false
}

func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
