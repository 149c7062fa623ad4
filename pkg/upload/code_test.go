package upload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/pkg/upload"
)

func TestErrorCodeFault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code upload.ErrorCode
		key  string
		args []any
	}{
		{upload.IniSize, upload.KeyTooLarge, nil},
		{upload.FormSize, upload.KeyTooLarge, nil},
		{upload.Partial, upload.KeyUploadError, nil},
		{upload.NoFile, upload.KeyNotSent, nil},
		{upload.NoTmpDir, upload.KeySysError, []any{6}},
		{upload.CantWrite, upload.KeySysError, []any{7}},
		{upload.Extension, upload.KeySysError, []any{8}},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			t.Parallel()
			fault := tt.code.Fault()
			require.NotNil(t, fault)
			assert.Equal(t, tt.key, fault.Key)
			assert.Equal(t, tt.args, fault.Args)
		})
	}

	assert.Nil(t, upload.OK.Fault())
	assert.Nil(t, upload.ErrorCode(5).Fault())
	assert.Equal(t, "code_5", upload.ErrorCode(5).String())
}
