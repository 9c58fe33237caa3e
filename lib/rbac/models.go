package rbac

import (
	"regexp"

	"komreq-backend/models"
)

// HTTPMethod метод в верхнем регистре, как в swagger аннотации роута
type HTTPMethod string

// PathRule правила одного метода: сначала точный путь, затем шаблоны с {param}
type PathRule struct {
	Exact    map[string]models.RbacFunc
	Patterns []PatternRule
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}
