package resume

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corruptPDF = []byte("%PDF-1.4\nthis is not really a pdf \x00\x01\x02 trailer")

func TestParse_Text(t *testing.T) {
	out, err := Parse(Source{Text: "  5 years   Python,\n\tAWS  "})
	require.NoError(t, err)
	assert.Equal(t, "5 years Python, AWS", out)
}

func TestParse_EmptyText(t *testing.T) {
	_, err := Parse(Source{Text: " \n\t "})
	assert.ErrorIs(t, err, ErrEmptyResume)
}

func TestParse_PlainTextFile(t *testing.T) {
	out, err := Parse(Source{Filename: "cv.txt", Data: []byte("Go developer\n\nKubernetes")})
	require.NoError(t, err)
	assert.Equal(t, "Go developer Kubernetes", out)
}

func TestParse_InvalidUTF8IsReplaced(t *testing.T) {
	out, err := Parse(Source{Filename: "cv.md", Data: []byte("Go \xff\xfe developer")})
	require.NoError(t, err)
	assert.Equal(t, "Go \uFFFD developer", out)
}

func TestParse_CorruptPDF(t *testing.T) {
	for _, name := range []string{"cv.pdf", "CV.PDF"} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(Source{Filename: name, Data: corruptPDF})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestParse_CorruptPDFBytesAsText(t *testing.T) {
	out, err := Parse(Source{Text: string(corruptPDF)})
	require.NoError(t, err)
	assert.Contains(t, out, "this is not really a pdf")
	assert.NotContains(t, out, "\x00")
}

func docx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParse_Docx(t *testing.T) {
	data := docx(t, `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Go</w:t><w:tab/><w:t>AWS</w:t></w:r></w:p></w:body></w:document>`)

	out, err := Parse(Source{Filename: "cv.docx", Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Go AWS", out)
}

func TestParse_DocxEntities(t *testing.T) {
	data := docx(t, `<w:document><w:body><w:p><w:r><w:t>R&amp;D &lt;Go&gt; &quot;lead&quot;</w:t></w:r></w:p></w:body></w:document>`)

	out, err := Parse(Source{Filename: "cv.docx", Data: data})
	require.NoError(t, err)
	assert.Equal(t, `R&D <Go> "lead"`, out)
}

// minimalPDF собирает PDF с одной строкой Helvetica на страницу и корректной таблицей xref.
func minimalPDF(pages ...string) []byte {
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	for i, text := range pages {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, obj := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func TestParse_PDFPages(t *testing.T) {
	data := minimalPDF("Jane Doe Go Engineer", "Kubernetes   and Postgres")

	out, err := Parse(Source{Filename: "cv.pdf", Data: data})
	require.NoError(t, err)

	first := strings.Index(out, "Jane Doe Go Engineer")
	second := strings.Index(out, "Kubernetes and Postgres")
	require.GreaterOrEqual(t, first, 0, out)
	require.GreaterOrEqual(t, second, 0, out)
	assert.Less(t, first, second)
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "  ")
}

func TestExtractTextFromPDF_JoinsPagesWithNewline(t *testing.T) {
	text, err := extractTextFromPDF(minimalPDF("first page", "second page"))
	require.NoError(t, err)

	assert.Regexp(t, `first page\s*\n\s*second page`, text)
}

func TestParse_CorruptDocx(t *testing.T) {
	_, err := Parse(Source{Filename: "cv.docx", Data: []byte("nope")})
	assert.ErrorIs(t, err, ErrMalformedDocument)
}
