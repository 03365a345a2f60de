package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/baliza/genesis/internal/domain"
)

var (
	reLine   = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reMember = regexp.MustCompile(`member "([^"]+)"`)
)

// userMessage turns err into a one-line message for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlfamily") {
				return "Family not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidArgument:
			if strings.Contains(oe.Op, "domain.geteve") {
				return "Eve needs Adam"
			}
			return missingParentMessage(extractMemberName(err.Error()), oe.Err)

		case domain.KindInvalidConfig:
			if name := extractMemberName(err.Error()); name != "" {
				return "Invalid member " + name
			}

			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid family file"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrInvalidArgument) {
		return missingParentMessage("", nil)
	}
	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// missingParentMessage keeps the domain's reason ("needs a father") and puts
// the member's name in front of it when one is known.
func missingParentMessage(member string, cause error) string {
	reason := "needs a mother and a father"
	if cause != nil {
		if r, ok := strings.CutPrefix(cause.Error(), "every human "); ok {
			reason = r
		}
	}

	if member == "" {
		return "Every human " + reason
	}
	return member + " " + reason
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractMemberName(s string) string {
	m := reMember.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
