package shape

import (
	"errors"
	"testing"

	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/matryer/is"
)

type testKind string

type testLeaf struct {
	Name  *string `json:"Name,omitempty"`
	Count *int32  `json:"Count,omitempty"`
}

type testShape struct {
	Title    *string           `json:"Title,omitempty"`
	Kind     testKind          `json:"Kind,omitempty"`
	Enabled  *bool             `json:"Enabled,omitempty"`
	Items    []string          `json:"Items,omitzero"`
	Leaf     *testLeaf         `json:"Leaf,omitempty"`
	Leaves   []testLeaf        `json:"Leaves,omitzero"`
	Params   map[string]string `json:"Params,omitzero"`
	internal string
	Headers  map[string]string `json:"-"`
}

func str(s string) *string { return &s }
func i32(i int32) *int32    { return &i }
func boolean(b bool) *bool  { return &b }

func TestEqualTreatsUnsetAsDistinctFromEmpty(t *testing.T) {
	is := is.New(t)

	a := &testShape{}
	b := &testShape{Items: []string{}}

	is.True(!Equal(a, b)) // nil and empty lists must differ
	is.True(Equal(a, &testShape{}))
}

func TestEqualComparesNestedShapes(t *testing.T) {
	is := is.New(t)

	a := &testShape{Title: str("t"), Leaf: &testLeaf{Name: str("leaf"), Count: i32(3)}}
	b := &testShape{Title: str("t"), Leaf: &testLeaf{Name: str("leaf"), Count: i32(3)}}

	is.True(Equal(a, b))

	b.Leaf.Count = i32(4)
	is.True(!Equal(a, b))
}

func TestEqualIgnoresMetadataAndUnexportedFields(t *testing.T) {
	is := is.New(t)

	a := &testShape{internal: "a", Headers: map[string]string{"x": "y"}}
	b := &testShape{internal: "b"}

	is.True(Equal(a, b))
}

func TestEqualHandlesNilShapes(t *testing.T) {
	is := is.New(t)

	var a, b *testShape
	is.True(Equal(a, b))
	is.True(!Equal(a, &testShape{}))
}

func TestHashOfStringFieldMatchesJavaConvention(t *testing.T) {
	is := is.New(t)

	// "abc".hashCode() == 96354
	is.Equal(hashString("abc"), int32(96354))
	is.Equal(Hash(&testLeaf{Name: str("abc")}), int32(31*(31*1+96354)+0))
}

func TestHashOfUnsetShapeOnlyDependsOnFieldCount(t *testing.T) {
	is := is.New(t)

	is.Equal(Hash(&testLeaf{}), int32(31*31))
}

func TestHashOfBooleans(t *testing.T) {
	is := is.New(t)

	is.Equal(Hash(&testShape{Enabled: boolean(true)}), Hash(&testShape{Enabled: boolean(true)}))
	is.True(Hash(&testShape{Enabled: boolean(true)}) != Hash(&testShape{Enabled: boolean(false)}))
}

func TestEqualShapesHaveEqualHashes(t *testing.T) {
	is := is.New(t)

	a := &testShape{Title: str("x"), Kind: "K", Items: []string{"a", "b"}, Params: map[string]string{"k": "v", "l": "w"}}
	b := &testShape{Title: str("x"), Kind: testKind("K"), Items: []string{"a", "b"}, Params: map[string]string{"l": "w", "k": "v"}}

	is.True(Equal(a, b))
	is.Equal(Hash(a), Hash(b))
}

func TestStringOmitsUnsetFields(t *testing.T) {
	is := is.New(t)

	s := &testShape{Enabled: boolean(false)}
	is.Equal(String(s), "{Enabled: false}")
}

func TestStringFollowsDeclarationOrder(t *testing.T) {
	is := is.New(t)

	s := &testShape{}
	s.Items = []string{"a", "b"}
	s.Title = str("title")
	s.Kind = "Known"
	s.Leaf = &testLeaf{Count: i32(7)}

	is.Equal(String(s), "{Title: title,Kind: Known,Items: [a, b],Leaf: {Count: 7}}")
}

func TestStringRendersMapsWithSortedKeys(t *testing.T) {
	is := is.New(t)

	s := &testShape{Params: map[string]string{"b": "2", "a": "1"}}
	is.Equal(String(s), "{Params: {a=1, b=2}}")
}

func TestAppendAllocatesUnsetList(t *testing.T) {
	is := is.New(t)

	s := &testShape{}
	Append(&s.Items, "a", "b")

	is.Equal(len(s.Items), 2)
	is.Equal(s.Items[0], "a")
	is.Equal(s.Items[1], "b")
}

func TestAppendWithoutItemsCreatesEmptyList(t *testing.T) {
	is := is.New(t)

	s := &testShape{}
	Append(&s.Items)

	is.True(s.Items != nil)
	is.Equal(len(s.Items), 0)
}

func TestPutUniqueFailsOnDuplicateKey(t *testing.T) {
	is := is.New(t)

	s := &testShape{}
	is.NoErr(PutUnique(&s.Params, "k", "v1"))

	err := PutUnique(&s.Params, "k", "v2")
	is.True(errors.Is(err, smerrors.ErrDuplicateKey))
	is.Equal(s.Params["k"], "v1") // first value should be kept

	Clear(&s.Params)
	is.True(s.Params == nil)
}
