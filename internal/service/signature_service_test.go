package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()

	sig := svc.Sign("secret", `{"kind":"MINTED","amount":42}`)
	assert.Len(t, sig, 64) // sha256 hex

	assert.True(t, svc.Verify("secret", `{"kind":"MINTED","amount":42}`, sig))
	assert.False(t, svc.Verify("secret", `{"kind":"MINTED","amount":43}`, sig))
	assert.False(t, svc.Verify("other-secret", `{"kind":"MINTED","amount":42}`, sig))
}

func TestHMACSignatureService_Deterministic(t *testing.T) {
	svc := NewHMACSignatureService()

	assert.Equal(t, svc.Sign("k", "payload"), svc.Sign("k", "payload"))
	assert.NotEqual(t, svc.Sign("k", "payload"), svc.Sign("k", "payload2"))
}
