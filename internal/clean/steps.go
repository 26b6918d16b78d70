package clean

import (
	"github.com/go-ego/gse"
	"github.com/longbridgeapp/opencc"
)

// ConvertT2S converts traditional-script tokens to simplified script.
type ConvertT2S struct {
	cc *opencc.OpenCC
}

func NewConvertT2S() (*ConvertT2S, error) {
	cc, err := opencc.New("t2s")
	if err != nil {
		return nil, err
	}
	return &ConvertT2S{cc: cc}, nil
}

func (s *ConvertT2S) Name() string { return "convert-t2s" }

func (s *ConvertT2S) Apply(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		converted, err := s.cc.Convert(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// Segment cuts each phrase into words.
type Segment struct {
	seg gse.Segmenter
}

func NewSegment() (*Segment, error) {
	seg, err := gse.New()
	if err != nil {
		return nil, err
	}
	return &Segment{seg: seg}, nil
}

func (s *Segment) Name() string { return "segment" }

func (s *Segment) Apply(tokens []string) ([]string, error) {
	var out []string
	for _, phrase := range tokens {
		out = append(out, s.seg.Cut(phrase, true)...)
	}
	return out, nil
}

// RemoveNonChinese drops tokens containing anything outside the CJK
// unified ideograph range; punctuation, latin text and digits go with them.
type RemoveNonChinese struct{}

func (RemoveNonChinese) Name() string { return "remove-non-chinese" }

func (RemoveNonChinese) Apply(tokens []string) ([]string, error) {
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != "" && allChinese(tok) {
			out = append(out, tok)
		}
	}
	return out, nil
}

func allChinese(s string) bool {
	for _, r := range s {
		if r < '一' || r > '鿿' {
			return false
		}
	}
	return true
}

// RemoveStopwords drops tokens found in the stopword set.
type RemoveStopwords struct {
	set map[string]struct{}
}

func NewRemoveStopwords(stopwords []string) *RemoveStopwords {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return &RemoveStopwords{set: set}
}

func (s *RemoveStopwords) Name() string { return "remove-stopwords" }

func (s *RemoveStopwords) Apply(tokens []string) ([]string, error) {
	out := tokens[:0]
	for _, tok := range tokens {
		if _, stop := s.set[tok]; !stop {
			out = append(out, tok)
		}
	}
	return out, nil
}
