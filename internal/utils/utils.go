package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tamanhoSenhaTemporaria = 12

// HashSenha aplica bcrypt com o custo padrão.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerificarSenha informa se a senha em texto puro corresponde ao hash.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// GerarSenhaTemporaria sorteia a senha alfanumérica usada no fluxo de
// redefinição; o usuário troca no primeiro acesso.
func GerarSenhaTemporaria() (string, error) {
	const alfabeto = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	senha := make([]byte, tamanhoSenhaTemporaria)
	for i := range senha {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alfabeto))))
		if err != nil {
			return "", err
		}
		senha[i] = alfabeto[n.Int64()]
	}
	return string(senha), nil
}
