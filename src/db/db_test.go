package db

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	type CustomInt int
	type S struct {
		I   int        `db:"I"`
		PI  *int       `db:"PI"`
		CI  CustomInt  `db:"CI"`
		PCI *CustomInt `db:"PCI"`
		B   bool       `db:"B"`
		PB  *bool      `db:"PB"`

		NoTag int
	}
	type Nested struct {
		S  S  `db:"S"`
		PS *S `db:"PS"`

		NoTag S
	}

	names, paths := getColumnNamesAndPaths(reflect.TypeOf(Nested{}), nil, nil)
	assert.Equal(t, []columnName{
		{"S", "I"}, {"S", "PI"},
		{"S", "CI"}, {"S", "PCI"},
		{"S", "B"}, {"S", "PB"},
		{"PS", "I"}, {"PS", "PI"},
		{"PS", "CI"}, {"PS", "PCI"},
		{"PS", "B"}, {"PS", "PB"},
	}, names)
	assert.Equal(t, []fieldPath{
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
	}, paths)
	assert.True(t, len(names) == len(paths))

	testStruct := Nested{}
	for i, path := range paths {
		val, field := followPathThroughStructs(reflect.ValueOf(&testStruct), path)
		assert.True(t, val.IsValid())
		assert.True(t, strings.Contains(strings.Join(names[i], "."), field.Name))
	}
}

func TestCompileQuery(t *testing.T) {
	type Dest struct {
		ID    int    `db:"id"`
		Title string `db:"title"`
	}

	t.Run("no prefix", func(t *testing.T) {
		compiled := compileQuery("SELECT $columns FROM compilation", reflect.TypeOf(Dest{}))
		assert.Equal(t, "SELECT id, title FROM compilation", compiled.query)
	})
	t.Run("with prefix", func(t *testing.T) {
		compiled := compileQuery("SELECT $columns{comp} FROM compilation AS comp", reflect.TypeOf(Dest{}))
		assert.Equal(t, "SELECT comp.id, comp.title FROM compilation AS comp", compiled.query)
	})
	t.Run("no placeholder", func(t *testing.T) {
		compiled := compileQuery("SELECT id FROM compilation", reflect.TypeOf(0))
		assert.Equal(t, "SELECT id FROM compilation", compiled.query)
		assert.Nil(t, compiled.fieldPaths)
	})
}

func TestCompileQueryModels(t *testing.T) {
	t.Run("pdf artifact", func(t *testing.T) {
		compiled := compileQuery("SELECT $columns FROM pdf_artifact", reflect.TypeOf(models.PDFArtifact{}))
		assert.Equal(t, "SELECT id, compilation_id, storage_path, published, date_created FROM pdf_artifact", compiled.query)
	})
	t.Run("anchor", func(t *testing.T) {
		compiled := compileQuery("SELECT $columns FROM complexity", reflect.TypeOf(models.Anchor{}))
		assert.Equal(t, "SELECT id, slug, name FROM complexity", compiled.query)
	})
	t.Run("item usage", func(t *testing.T) {
		compiled := compileQuery("SELECT $columns FROM item_usage", reflect.TypeOf(models.ItemUsage{}))
		assert.Equal(t, "SELECT id, item_id, compilation_id, status, date_created FROM item_usage", compiled.query)
		// compilation_id is a uuid and must scan as one column, not a
		// nested struct.
		assert.Len(t, compiled.fieldPaths, 5)
	})
}

func TestQueryBuilder(t *testing.T) {
	var qb QueryBuilder
	qb.Add("SELECT stuff FROM thing WHERE id = $?", 3)
	qb.Add("AND (foo = $? OR bar = $?)", "hello", true)

	assert.Equal(t, "SELECT stuff FROM thing WHERE id = $1\nAND (foo = $2 OR bar = $3)\n", qb.String())
	assert.Equal(t, []interface{}{3, "hello", true}, qb.Args())

	assert.Panics(t, func() {
		qb.Add("mismatched $? $?", 1)
	})
}
