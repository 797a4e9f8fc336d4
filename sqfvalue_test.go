package sqfvalue

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Leopard20/sqf-value/value"
	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	var v value.Value
	require.NoError(t, Unmarshal([]byte(`[1,"a",[true]]`), &v))
	require.True(t, v.Equals(value.NewArray(
		value.NewScalar(1), value.NewString("a"), value.NewArray(value.NewBoolean(true)))))

	var out any
	require.NoError(t, Unmarshal([]byte(`[1,"a"]`), &out))
	autogold.Expect([]interface{}{float32(1), "a"}).Equal(t, out)

	var f float32
	require.NoError(t, Unmarshal([]byte("3.5"), &f))
	require.Equal(t, float32(3.5), f)

	// Kind mismatch on a native target soft-fails to the zero value.
	var s string
	require.NoError(t, Unmarshal([]byte("3.5"), &s))
	require.Equal(t, "", s)

	require.Error(t, Unmarshal([]byte("3.5"), &struct{}{}))
}

func TestMarshal(t *testing.T) {
	autogold.Expect(`[1,"a",[true,nil]]`).Equal(t,
		string(Marshal([]any{1, "a", []any{true, nil}})))
	autogold.Expect(`"He said ""hi"""`).Equal(t,
		string(Marshal(`He said "hi"`)))
	autogold.Expect("nil").Equal(t, string(Marshal(nil)))
}

func TestFormat(t *testing.T) {
	autogold.Expect(`[1,2,"it's"]`).Equal(t,
		string(Format([]byte(` [ 1, 2,'it''s']`))))
	autogold.Expect("nil").Equal(t, string(Format(nil)))
}

func TestDecoderEncoder(t *testing.T) {
	var v value.Value
	require.NoError(t, NewDecoder(strings.NewReader(`[1,2]`)).Decode(&v))
	require.True(t, v.Equals(value.NewArray(value.NewScalar(1), value.NewScalar(2))))

	buf := &bytes.Buffer{}
	require.NoError(t, NewEncoder(buf).Encode(v))
	require.Equal(t, "[1,2]", buf.String())
}
