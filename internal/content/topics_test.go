package content

import (
	"strings"
	"testing"

	"wrapped/internal/config"
	"wrapped/internal/model"
)

func TestSkipTopicTerm_ShouldDropFillerAndShortTerms(t *testing.T) {
	cfg := config.Default()
	cases := []struct {
		term string
		want bool
	}{
		{"gonna", true},
		{"guitar", false},
		{"gonna wanna", true},
		{"guitar gonna", false},
		{"ab", true},
		{"a b", true},
	}
	for _, c := range cases {
		if got := skipTopicTerm(c.term, cfg); got != c.want {
			t.Errorf("skipTopicTerm(%q) = %v, want %v", c.term, got, c.want)
		}
	}
}

func TestBuildDocTermMatrix_ShouldApplyFrequencyBounds(t *testing.T) {
	docs := make([]string, 10)
	for i := range docs {
		docs[i] = "alpha filler"
		if i < 4 {
			docs[i] += " gamma"
		}
		if i == 0 {
			docs[i] += " rarely"
		}
	}

	features, x := buildDocTermMatrix(docs, contactTopicParams)

	has := func(term string) bool {
		for _, f := range features {
			if f == term {
				return true
			}
		}
		return false
	}
	if has("alpha") {
		t.Error("expected term in every doc dropped by the upper bound")
	}
	if !has("gamma") {
		t.Error("expected mid-frequency term kept")
	}
	if has("rarely") {
		t.Error("expected rare term dropped by the lower bound")
	}
	rows, cols := x.Dims()
	if rows != 10 || cols != len(features) {
		t.Errorf("unexpected matrix shape %dx%d for %d features", rows, cols, len(features))
	}
}

func TestTopicsByYear_WhenTooFewMessages_ShouldSkipYear(t *testing.T) {
	var msgs []model.Message
	for i := 0; i < 99; i++ {
		msgs = append(msgs, textMsg("Ana", true, 2023, "guitar pedal amp tone"))
	}

	if got := TopicsByYear(msgs, config.Default()); len(got) != 0 {
		t.Errorf("expected thin year skipped, got %+v", got)
	}
}

func TestTopicsByContact_ShouldMineCoherentVocabulary(t *testing.T) {
	var msgs []model.Message
	for i := 0; i < 30; i++ {
		msgs = append(msgs, textMsg("Ana", true, 2023, "guitar pedal amp tone settings"))
		msgs = append(msgs, textMsg("Ana", true, 2023, "soccer match goal league standings"))
	}

	got := TopicsByContact(msgs, []string{"Ana"}, config.Default())

	if len(got) == 0 {
		t.Fatal("expected topics mined")
	}
	domain := "guitar pedal amp tone settings soccer match goal league standings"
	for _, topic := range got {
		if topic.Contact != "Ana" {
			t.Errorf("expected contact set, got %+v", topic)
		}
		if len(topic.Words) == 0 || len(topic.Words) > 5 {
			t.Errorf("unexpected word count: %+v", topic)
		}
		for _, w := range topic.Words {
			for _, part := range strings.Fields(w) {
				if !strings.Contains(domain, part) {
					t.Errorf("unexpected topic word %q", w)
				}
			}
		}
	}
}
