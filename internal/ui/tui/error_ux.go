package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns errors outside a submission (options, presets) into a
// short banner.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return "Canceled"
	}

	var se *domain.ServiceError
	if errors.As(err, &se) {
		if se.Detail != "" {
			return fmt.Sprintf("Service error %d: %s", se.Status, se.Detail)
		}
		return fmt.Sprintf("Service error %d", se.Status)
	}

	var de *domain.DecodeError
	if errors.As(err, &de) {
		return "Unexpected response from service"
	}

	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return "Service timed out"
		}
		return "Service unreachable"
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return "Service unreachable"
	}

	var op *domain.OpError
	if errors.As(err, &op) {
		switch op.Kind {
		case domain.KindNotFound:
			if strings.Contains(op.Op, "yamlinput") {
				return "Preset not found"
			}
			if strings.Contains(op.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(op.Path) != "" {
				base = filepath.Base(op.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
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
