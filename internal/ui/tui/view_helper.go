package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/baliza/genesis/internal/domain"
)

const maxNamesShown = 12

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func joinNames(hs []domain.Human) string {
	if len(hs) == 0 {
		return "(none)"
	}

	names := make([]string, 0, len(hs))
	for i, h := range hs {
		if i == maxNamesShown {
			names = append(names, fmt.Sprintf("+%d more", len(hs)-maxNamesShown))
			break
		}
		names = append(names, h.Name())
	}
	return strings.Join(names, ", ")
}

// renderMemberCard describes h as it sits in tree.
func renderMemberCard(h domain.Human, tree *domain.Tree) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Sex:        %s\n", h.Sex()))
	b.WriteString(fmt.Sprintf("Mother:     %s\n", parentName(h.Mother())))
	b.WriteString(fmt.Sprintf("Father:     %s\n", parentName(h.Father())))
	b.WriteString(fmt.Sprintf("Generation: %d\n", domain.Generation(h)))
	if domain.IsSeed(h) {
		b.WriteString("Seed:       yes\n")
	}
	b.WriteString("\n")

	b.WriteString("Ancestors:\n  ")
	b.WriteString(clampString(joinNames(domain.Ancestors(h)), 120))
	b.WriteString("\n\n")

	b.WriteString("Children:\n  ")
	if tree != nil {
		b.WriteString(clampString(joinNames(tree.Children(h)), 120))
	} else {
		b.WriteString("(none)")
	}
	b.WriteString("\n")

	return b.String()
}

func parentName(h domain.Human) string {
	if h == nil {
		return "(none)"
	}
	return h.Name()
}

// safeName reads h's name without letting a broken Human panic again.
func safeName(h domain.Human) (name string) {
	defer func() {
		if recover() != nil {
			name = "(unreadable)"
		}
	}()
	return h.Name()
}
