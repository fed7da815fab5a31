package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/controle-estoque/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate("segredo", 42, "maria", 2, "controle-estoque", 5)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse("segredo", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, 2, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("segredo", 1, "joao", 1, "x", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate("segredo", 1, "joao", 1, "x", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("segredo", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "joao", 1, "x", 5)
	assert.Error(t, err)
}
