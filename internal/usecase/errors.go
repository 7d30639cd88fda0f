package usecase

import "errors"

const (
	ConfigurationErrorMessage = "Server configuration error."
	GatewayErrorPrefix        = "Failed to send SMS via TextBee: "
)

// ConfigurationError: faltam as credenciais do TextBee. Nenhuma chamada
// externa é feita.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return ConfigurationErrorMessage
}

func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// GatewayError: a chamada ao provedor falhou (rede, timeout ou status fora de 2xx).
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return GatewayErrorPrefix + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func IsGatewayError(err error) bool {
	var target *GatewayError
	return errors.As(err, &target)
}
