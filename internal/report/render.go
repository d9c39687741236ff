package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/jx"
)

// none is printed in text output for an absent result.
const none = "-"

// WriteText renders r as indented plain text.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Authors (%d)\n", len(r.Authors))
	for _, a := range r.Authors {
		fmt.Fprintf(&b, "  %s\n", a.Name)
		fmt.Fprintf(&b, "    articles:    %d\n", len(a.Titles))
		fmt.Fprintf(&b, "    magazines:   %s\n", list(a.Magazines))
		fmt.Fprintf(&b, "    topic areas: %s\n", list(a.TopicAreas))
	}

	fmt.Fprintf(&b, "Magazines (%d)\n", len(r.Magazines))
	for _, m := range r.Magazines {
		fmt.Fprintf(&b, "  %s [%s]\n", m.Name, m.Category)
		fmt.Fprintf(&b, "    titles:               %s\n", list(m.Titles))
		fmt.Fprintf(&b, "    contributors:         %s\n", list(m.Contributors))
		fmt.Fprintf(&b, "    contributing authors: %s\n", list(m.ContributingAuthors))
	}

	fmt.Fprintf(&b, "Articles: %d\n", r.Articles)
	top := r.TopPublisher
	if top == "" {
		top = none
	}
	fmt.Fprintf(&b, "Top publisher: %s\n", top)

	_, err := io.WriteString(w, b.String())

	return err //nolint: wrapcheck
}

func list(items []string) string {
	if len(items) == 0 {
		return none
	}

	return strings.Join(items, ", ")
}

// WriteJSON renders r as a JSON object. Absent results are encoded as null.
func WriteJSON(w io.Writer, r *Report) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.SetIdent(2)

	e.Obj(func(e *jx.Encoder) {
		e.Field("authors", func(e *jx.Encoder) {
			e.ArrStart()
			for _, a := range r.Authors {
				encodeAuthor(e, a)
			}
			e.ArrEnd()
		})
		e.Field("magazines", func(e *jx.Encoder) {
			e.ArrStart()
			for _, m := range r.Magazines {
				encodeMagazine(e, m)
			}
			e.ArrEnd()
		})
		e.Field("articles", func(e *jx.Encoder) { e.Int(r.Articles) })
		e.Field("topPublisher", func(e *jx.Encoder) {
			if r.TopPublisher == "" {
				e.Null()

				return
			}
			e.Str(r.TopPublisher)
		})
	})

	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}

func encodeAuthor(e *jx.Encoder, a AuthorSummary) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(a.ID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(a.Name) })
		e.Field("titles", func(e *jx.Encoder) { encodeStrings(e, a.Titles, false) })
		e.Field("magazines", func(e *jx.Encoder) { encodeStrings(e, a.Magazines, false) })
		e.Field("topicAreas", func(e *jx.Encoder) { encodeStrings(e, a.TopicAreas, true) })
	})
}

func encodeMagazine(e *jx.Encoder, m MagazineSummary) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(m.ID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(m.Name) })
		e.Field("category", func(e *jx.Encoder) { e.Str(m.Category) })
		e.Field("titles", func(e *jx.Encoder) { encodeStrings(e, m.Titles, true) })
		e.Field("contributors", func(e *jx.Encoder) { encodeStrings(e, m.Contributors, false) })
		e.Field("contributingAuthors", func(e *jx.Encoder) { encodeStrings(e, m.ContributingAuthors, true) })
	})
}

// encodeStrings writes items as an array. A nil slice is written as null
// when nullable is set and as an empty array otherwise.
func encodeStrings(e *jx.Encoder, items []string, nullable bool) {
	if items == nil && nullable {
		e.Null()

		return
	}

	e.ArrStart()
	for _, s := range items {
		e.Str(s)
	}
	e.ArrEnd()
}
