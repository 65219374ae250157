package jobposting

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/artem13815/resume-optimizer/pkg/nlp"
)

const (
	staticMinChars   = 500
	renderedMinChars = 100
)

// Extractor превращает URL в текст вакансии. Сначала статический запрос;
// рендерер запускается не больше одного раза и только если текста мало
// или статический запрос упал. Extract ошибок не возвращает.
type Extractor struct {
	static   Fetcher
	rendered Fetcher
	cleanser Cleanser
	logger   logrus.FieldLogger
}

// NewExtractor собирает конвейер. rendered может быть nil, тогда рендеринг отключён.
func NewExtractor(static, rendered Fetcher, cleanser Cleanser, logger logrus.FieldLogger) *Extractor {
	return &Extractor{static: static, rendered: rendered, cleanser: cleanser, logger: logger}
}

func (e *Extractor) Extract(ctx context.Context, url string) JobPosting {
	log := e.logger.WithField("url", url)

	text, title, err := fetchText(ctx, e.static, url)
	switch {
	case err != nil:
		log.WithError(err).Info("static fetch failed, trying renderer")
	case nlp.RuneLen(text) > staticMinChars:
		log.WithField("chars", nlp.RuneLen(text)).Debug("static fetch succeeded")
		return e.finish(ctx, url, title, text)
	default:
		log.WithField("chars", nlp.RuneLen(text)).Info("static content too short, trying renderer")
	}

	staticErr := err
	if e.rendered == nil {
		return unextracted(url, staticErr)
	}
	text, title, err = fetchText(ctx, e.rendered, url)
	if err != nil {
		log.WithError(err).Warn("rendered fetch failed")
		if staticErr == nil {
			staticErr = err
		}
		return unextracted(url, staticErr)
	}
	if nlp.RuneLen(text) > renderedMinChars {
		log.WithField("chars", nlp.RuneLen(text)).Debug("rendered fetch succeeded")
		return e.finish(ctx, url, title, text)
	}
	log.WithField("chars", nlp.RuneLen(text)).Warn("rendered content too short")
	return unextracted(url, staticErr)
}

// unextracted подставляет первую ошибку загрузки, если она была.
func unextracted(url string, cause error) JobPosting {
	if cause != nil {
		return failed(url, fmt.Sprintf(msgScrapeErrorFmt, cause))
	}
	return failed(url, MsgUnableToExtract)
}

func (e *Extractor) finish(ctx context.Context, url, title, raw string) JobPosting {
	return JobPosting{
		URL:          url,
		Title:        title,
		RawText:      raw,
		CleansedText: e.cleanser.Cleanse(ctx, raw),
		Extracted:    true,
	}
}

func failed(url, msg string) JobPosting {
	return JobPosting{URL: url, RawText: msg, CleansedText: msg}
}

func fetchText(ctx context.Context, f Fetcher, url string) (text, title string, err error) {
	doc, err := f.Fetch(ctx, url)
	if err != nil {
		return "", "", err
	}
	text, title = HTMLToText(doc)
	return text, title, nil
}
