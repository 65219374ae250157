package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/artem13815/resume-optimizer/pkg/nlp"
)

// MaxUploadBytes ограничивает размер загружаемого файла резюме.
const MaxUploadBytes = 15 << 20

var (
	// ErrMalformedDocument: загруженный документ не удалось прочитать.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrEmptyResume: после нормализации не осталось текста.
	ErrEmptyResume = errors.New("empty resume content")
)

// Source — либо загруженный файл (Filename + Data), либо вставленный Text.
type Source struct {
	Filename string
	Data     []byte
	Text     string
}

// IsFile сообщает, пришёл ли источник из загрузки.
func (s Source) IsFile() bool { return s.Filename != "" || len(s.Data) > 0 }

// Parse извлекает из резюме однострочный текст.
// PDF читается постранично, DOCX через document.xml, остальное считается UTF-8 текстом.
func Parse(src Source) (string, error) {
	var text string
	if src.IsFile() {
		var err error
		switch strings.ToLower(filepath.Ext(src.Filename)) {
		case ".pdf":
			text, err = extractTextFromPDF(src.Data)
		case ".docx":
			text, err = extractTextFromDocx(src.Data)
		default:
			text = decodeUTF8(src.Data)
		}
		if err != nil {
			return "", err
		}
	} else {
		text = decodeUTF8([]byte(src.Text))
	}
	// postgres TEXT не принимает NUL
	text = nlp.CollapseWhitespace(strings.ReplaceAll(text, "\x00", " "))
	if text == "" {
		return "", ErrEmptyResume
	}
	return text, nil
}

func decodeUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}

func extractTextFromPDF(data []byte) (text string, err error) {
	// ledongthuc/pdf паникует на некоторых обрезанных файлах
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrMalformedDocument, r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrMalformedDocument, err)
	}
	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		s, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: pdf page %d: %v", ErrMalformedDocument, i, err)
		}
		pages = append(pages, s)
	}
	return strings.Join(pages, "\n"), nil
}

var reTags = regexp.MustCompile(`<[^>]+>`)

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrMalformedDocument, err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: docx: %v", ErrMalformedDocument, err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: docx: %v", ErrMalformedDocument, err)
		}
		break
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("%w: no document.xml found in docx", ErrMalformedDocument)
	}
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// &amp; и прочие сущности XML раскрываются после удаления тегов
	return html.UnescapeString(reTags.ReplaceAllString(xml, " ")), nil
}
