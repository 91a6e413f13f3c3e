package config

import (
	"net/url"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// scpLike matches the user@host:path form git accepts for ssh remotes.
	scpLike = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+:[A-Za-z0-9._/~-]+$`)

	repoSchemes = map[string]bool{"http": true, "https": true, "ssh": true, "git": true, "file": true}
)

// validatorInstance returns the validator shared by the config package. Fields
// are reported by their yaml key.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("repo_url", func(fl validator.FieldLevel) bool {
			return isRepoURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isRepoURL reports whether s is a location a palette repository can be
// cloned from: an http(s), ssh, git or file URL, an scp-like ssh remote, or a
// local path written as absolute or ./ ../ relative.
func isRepoURL(s string) bool {
	switch {
	case s == "" || strings.TrimSpace(s) != s:
		return false
	case strings.ContainsRune(s, 0):
		return false
	case scpLike.MatchString(s):
		return true
	case strings.Contains(s, "://"):
		return isRemoteURL(s)
	default:
		return isLocalRepoPath(s)
	}
}

func isRemoteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !repoSchemes[u.Scheme] {
		return false
	}
	if u.Scheme == "file" {
		return u.Host == "" && isLocalRepoPath(u.Path)
	}
	return u.Host != ""
}

func isLocalRepoPath(p string) bool {
	if !strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "./") && !strings.HasPrefix(p, "../") && !filepath.IsAbs(p) {
		return false
	}
	return filepath.Clean(p) != string(filepath.Separator)
}
