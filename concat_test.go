package metastr

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	a, b := New("abc"), New("def")
	got := Concat(a, b)
	require.True(t, Equal(got, New("abcdef")))
	require.Equal(t, a.Len()+b.Len()-1, got.Len())
}

func TestConcatSingle(t *testing.T) {
	s := New("abc")
	require.True(t, Equal(Concat(s), s))
	require.Equal(t, s.Len(), Concat(s).Len())
}

func TestConcatMultiMatchesPairwise(t *testing.T) {
	a, b, c := New("abc"), New("def"), New("2333")
	require.True(t, Equal(Concat(a, b, c), Concat(Concat(a, b), c)))
	require.True(t, Equal(Concat(a, b, c), New("abcdef2333")))
}

func TestConcatNonByteUnits(t *testing.T) {
	require.True(t, Equal(Concat(U16("abc"), U16("def")), U16("abcdef")))
	require.True(t, Equal(Concat(U32("abc"), U32("滑稽")), U32("abc滑稽")))
}

func TestConcatConvenience(t *testing.T) {
	require.True(t, Equal(ConcatStrings("abc", "def"), New("abcdef")))
	require.True(t, Equal(
		ConcatUnits([]byte("abc"), []byte("def")),
		New("abcdef"),
	))
	require.True(t, Equal(
		ConcatUnits([]uint16{'a', 'b'}, []uint16{'c'}),
		U16("abc"),
	))
}

func TestConcatPaddedOperand(t *testing.T) {
	// zero units inside an operand's content are carried into the result
	got := Concat(New("ab\x00"), New("cd"))
	require.Equal(t, 6, got.Len())
	require.Equal(t, "ab\x00cd", got.String())
}

func TestConcatProperties(t *testing.T) {
	lengthLaw := func(x, y string) bool {
		a, b := New(x), New(y)
		return Concat(a, b).Len() == a.Len()+b.Len()-1
	}
	require.NoError(t, quick.Check(lengthLaw, nil))

	contentLaw := func(x, y string) bool {
		return Concat(New(x), New(y)).EqualString(x + y)
	}
	require.NoError(t, quick.Check(contentLaw, nil))

	associative := func(x, y, z string) bool {
		a, b, c := New(x), New(y), New(z)
		return Equal(Concat(a, b, c), Concat(Concat(a, b), c))
	}
	require.NoError(t, quick.Check(associative, nil))
}
