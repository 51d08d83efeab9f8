package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("minha-senha")
	require.NoError(t, err)

	assert.True(t, VerificarSenha(hash, "minha-senha"))
	assert.False(t, VerificarSenha(hash, "outra-senha"))
}

func TestGerarSenhaTemporaria(t *testing.T) {
	const alfabeto = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	senha, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.Len(t, senha, tamanhoSenhaTemporaria)
	for _, c := range senha {
		assert.True(t, strings.ContainsRune(alfabeto, c))
	}
}
