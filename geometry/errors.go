package geometry

import "fmt"

// ConfigurationError reports an unusable detector description: an
// unknown variant tag or a missing base material. It is raised at
// construction time only and is not recoverable, since the geometry
// shape is load-bearing for every later index-based lookup.
type ConfigurationError struct {
	Subject string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("[geometry] %s: %s", e.Subject, e.Message)
}

type makeNewConfigurationErrorFuncType = func(message string, formatedValues ...interface{}) error

var newVariantError = makeNewConfigurationErrorFunc("variant")
var newMaterialError = makeNewConfigurationErrorFunc("material")

func makeNewConfigurationErrorFunc(subject string) makeNewConfigurationErrorFuncType {
	return func(message string, formatedValues ...interface{}) error {
		return &ConfigurationError{
			Subject: subject,
			Message: fmt.Sprintf(message, formatedValues...),
		}
	}
}
