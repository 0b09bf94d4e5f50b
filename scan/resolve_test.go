package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/fmtscan/template"
)

const (
	compositeTemplate = "some text before {%d} more text after {%s} and still more text here {%f}"
	compositeSource   = "some text before 123456 more text after MYSTERY WORD and still more text here 3.14159265e-1"
)

func TestResolve_Composite(t *testing.T) {
	tmpl := template.MustCompile(compositeTemplate)

	tests := []struct {
		index    int
		want     Span
		wantText string
	}{
		{0, Span{Start: 17, End: 23}, "123456"},
		{1, Span{Start: 40, End: 52}, "MYSTERY WORD"},
		{2, Span{Start: 78, End: 91}, "3.14159265e-1"},
	}

	for _, tt := range tests {
		span, err := Resolve(tmpl, compositeSource, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, span, "placeholder %d", tt.index)
		assert.Equal(t, tt.wantText, span.Slice(compositeSource))
	}
}

func TestResolve_TrailingLiteral(t *testing.T) {
	tmpl := template.MustCompile("{}, bla-bla-bla")

	span, err := Resolve(tmpl, "lorem ipsum, bla-bla-bla", 0)
	require.NoError(t, err)
	assert.Equal(t, "lorem ipsum", span.Slice("lorem ipsum, bla-bla-bla"))
}

func TestResolve_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		template string
		source   string
		want     []string
	}{
		{
			// The leading literal is not matched against the source: the
			// first value starts at the template offset whatever precedes it.
			name:     "leading literal is not verified",
			template: "abc{}",
			source:   "XYZ42",
			want:     []string{"42"},
		},
		{
			name:     "source shorter than leading literal",
			template: "long prefix {}",
			source:   "ab",
			want:     []string{""},
		},
		{
			// A missing interior separator extends the value to the end of
			// the source, and every later placeholder resolves empty.
			name:     "missing interior separator falls back to end",
			template: "{} | {}",
			source:   "1 2",
			want:     []string{"1 2", ""},
		},
		{
			name:     "missing trailing separator falls back to end",
			template: "{};",
			source:   "value",
			want:     []string{"value"},
		},
		{
			name:     "adjacent placeholders",
			template: "{}{}",
			source:   "12",
			want:     []string{"", "12"},
		},
		{
			name:     "value containing its separator is cut early",
			template: "{}, {}",
			source:   "a, b, c",
			want:     []string{"a", "b, c"},
		},
		{
			name:     "empty source",
			template: "{} and {}",
			source:   "",
			want:     []string{"", ""},
		},
		{
			name:     "repeated separators resolve forward",
			template: "x={} x={} x={}",
			source:   "x=1 x=2 x=3",
			want:     []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := template.MustCompile(tt.template)
			spans := ResolveAll(tmpl, tt.source)
			require.Len(t, spans, len(tt.want))

			for i, span := range spans {
				assert.Equal(t, tt.want[i], span.Slice(tt.source), "placeholder %d", i)
			}
		})
	}
}

func TestResolve_SpansNonOverlapping(t *testing.T) {
	tmpl := template.MustCompile("[{}] [{}] [{}] [{}]")
	src := "[a] [bb] [] [dddd]"

	spans := ResolveAll(tmpl, src)
	require.Len(t, spans, 4)

	for i := 1; i < len(spans); i++ {
		assert.GreaterOrEqual(t, spans[i].Start, spans[i-1].End, "span %d starts before span %d ends", i, i-1)
		assert.LessOrEqual(t, spans[i].Start, spans[i].End)
	}
	assert.Equal(t, 0, spans[2].Len())
}

func TestResolve_Idempotent(t *testing.T) {
	tmpl := template.MustCompile(compositeTemplate)

	for i := 0; i < tmpl.NumPlaceholders(); i++ {
		a, err := Resolve(tmpl, compositeSource, i)
		require.NoError(t, err)
		b, err := Resolve(tmpl, compositeSource, i)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestResolve_IndexOutOfRange(t *testing.T) {
	tmpl := template.MustCompile("{} {}")

	for _, i := range []int{-1, 2, 10} {
		_, err := Resolve(tmpl, "1 2", i)
		assert.ErrorIs(t, err, ErrIndex)
		assert.ErrorIs(t, err, ErrUsage)
	}

	_, err := Resolve(nil, "1", 0)
	assert.ErrorIs(t, err, ErrNilTemplate)
}

func TestResolver_Next(t *testing.T) {
	tmpl := template.MustCompile("{}-{}")
	r := NewResolver(tmpl, "4-2")

	assert.Equal(t, 0, r.Index())
	span, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, Span{Start: 0, End: 1}, span)

	span, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, Span{Start: 2, End: 3}, span)
	assert.Equal(t, 2, r.Index())

	_, ok = r.Next()
	assert.False(t, ok)
}

func TestResolveAll_NoPlaceholders(t *testing.T) {
	tmpl := template.MustCompile("nothing to see")
	assert.Empty(t, ResolveAll(tmpl, "nothing to see"))
}
