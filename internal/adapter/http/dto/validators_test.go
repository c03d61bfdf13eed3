package dto

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindJSON(t *testing.T, raw string, obj interface{}) error {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(raw), obj))
	return binding.Validator.ValidateStruct(obj)
}

func TestSafeID_AcceptsAddresses(t *testing.T) {
	for _, addr := range []string{"john", "jane.doe", "holder_42", "acme-corp"} {
		req := RegisterRequest{Address: addr, Password: "password123"}
		assert.NoError(t, binding.Validator.ValidateStruct(&req), addr)
	}
}

func TestSafeID_RejectsUnsafeAddresses(t *testing.T) {
	for _, addr := range []string{"john doe", "a/b", "<script>", "jöhn"} {
		req := RegisterRequest{Address: addr, Password: "password123"}
		assert.Error(t, binding.Validator.ValidateStruct(&req), addr)
	}
}

func TestTransferRequest_ReferenceOptional(t *testing.T) {
	var req TransferRequest
	err := bindJSON(t, `{"to":"jane","amount":1200000}`, &req)
	assert.NoError(t, err)
	assert.Empty(t, req.ReferenceID)
}

func TestTransferRequest_RejectsNonPositiveAmount(t *testing.T) {
	var req TransferRequest
	err := bindJSON(t, `{"to":"jane","amount":-5}`, &req)
	assert.Error(t, err)
}

func TestInitRequest_ZeroDecimalsIsValid(t *testing.T) {
	var req InitRequest
	err := bindJSON(t, `{"supply":13000000,"name":"Acme Registry","symbol":"ACME","decimals":0}`, &req)
	assert.NoError(t, err)
}

func TestInitRequest_RejectsDecimalsOutOfRange(t *testing.T) {
	var req InitRequest
	err := bindJSON(t, `{"supply":1000,"name":"Acme","symbol":"ACME","decimals":19}`, &req)
	assert.Error(t, err)
}

func TestDelegateRequest_EmptyDelegatePassesBinding(t *testing.T) {
	// The voting service owns the empty-delegate error, not the binding layer.
	var req DelegateRequest
	err := bindJSON(t, `{"delegate":""}`, &req)
	assert.NoError(t, err)
}

func TestSanitizeStruct_TrimsAndEscapes(t *testing.T) {
	req := RegisterRequest{Address: "  john  ", Password: `pass<b>word</b>`}
	SanitizeStruct(&req)
	assert.Equal(t, "john", req.Address)
	assert.Equal(t, "pass&lt;b&gt;word&lt;/b&gt;", req.Password)
}

func TestSanitizeStruct_HandlesPointerFields(t *testing.T) {
	type payload struct {
		Note *string
	}
	note := " hello "
	p := payload{Note: &note}
	SanitizeStruct(&p)
	assert.Equal(t, "hello", *p.Note)
}
