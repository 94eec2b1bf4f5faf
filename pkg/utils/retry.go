package utils

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// permanentError marca um erro que não deve ser retentado.
type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }

func (p *permanentError) Unwrap() error { return p.err }

// Permanent marca err como definitivo: Retry devolve o erro original na hora,
// sem novas tentativas. Erros 4xx de APIs (objeto removido, token expirado)
// devem ser marcados assim.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Retry executa fn com backoff exponencial limitado. O primeiro retry espera
// initial, dobrando até max. Erros marcados com Permanent encerram o loop
// imediatamente.
func Retry(ctx context.Context, attempts int, initial, max time.Duration, fn func() error) error {
	if attempts <= 1 {
		return unwrapPermanent(fn())
	}

	delay := initial
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			if delay < max {
				delay *= 2
				if delay > max {
					delay = max
				}
			}
		}

		if err := fn(); err != nil {
			var perm *permanentError
			if errors.As(err, &perm) {
				return perm.err
			}
			lastErr = err
			continue
		}
		return nil
	}

	return errors.Wrap(lastErr, "retry: tentativas esgotadas")
}

func unwrapPermanent(err error) error {
	var perm *permanentError
	if errors.As(err, &perm) {
		return perm.err
	}
	return err
}
