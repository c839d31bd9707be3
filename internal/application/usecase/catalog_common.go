package usecase

import (
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/pkg/slug"
)

// resolveSlug usa el slug recibido o lo genera a partir del título/nombre.
func resolveSlug(given, source, sourceField string) (string, error) {
	if given == "" {
		s := slug.Make(source)
		if s == "" {
			verr := domain.NewValidationError()
			verr.Add(sourceField, "no se puede generar un slug a partir de este valor")
			return "", verr
		}
		return s, nil
	}
	if !slug.Valid(given) {
		verr := domain.NewValidationError()
		verr.Add("slug", "solo minúsculas, dígitos y guiones (máx. 64)")
		return "", verr
	}
	return given, nil
}
