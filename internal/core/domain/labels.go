package domain

import "fmt"

// Locale selects a built-in label set.
type Locale string

// Available locales.
const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

// IsValid returns true if the locale is recognised.
func (l Locale) IsValid() bool {
	switch l {
	case LocaleEnglish, LocaleChinese:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Locale) String() string {
	return string(l)
}

// AllLocales returns all available locales.
func AllLocales() []Locale {
	return []Locale{LocaleEnglish, LocaleChinese}
}

// Labels holds every user-visible text of the page.
type Labels struct {
	// Title is the page heading.
	Title string

	// QueryPlaceholder and QuestionPlaceholder hint at the inputs.
	QueryPlaceholder    string
	QuestionPlaceholder string

	// Search is the search control's label.
	Search string

	// Ask is the idle ask control's label.
	Ask string

	// AskBusy replaces Ask while a question is in flight.
	AskBusy string

	// Loading is shown while a search is in flight.
	Loading string

	// EnterQuery is the validation notice for an empty query.
	EnterQuery string

	// EnterQuestion is the validation notice for an empty question.
	EnterQuestion string

	// SearchFailed is the notice title and generic message of a failed search.
	SearchFailed string

	// AskFailed is the notice title and generic message of a failed ask.
	AskFailed string

	// Papers heads the results container.
	Papers string

	// NoResults is the placeholder for an empty result.
	NoResults string

	// ResultsCount formats the count label. It takes one %d verb.
	ResultsCount string

	// DownloadPDF labels the paper link.
	DownloadPDF string

	// QASection heads the question & answer section.
	QASection string

	// Answer heads the answer section.
	Answer string

	// Sources heads the citations block.
	Sources string

	// TimeLayout formats the answer timestamp.
	TimeLayout string
}

// DefaultLabels returns the English label set.
func DefaultLabels() Labels {
	return Labels{
		Title:               "Paper Search & Q&A",
		QueryPlaceholder:    "Search keywords",
		QuestionPlaceholder: "Ask about the papers found",
		Search:              "Search",
		Ask:                 "Ask",
		AskBusy:             "Thinking...",
		Loading:             "Searching...",
		EnterQuery:          "Please enter a search keyword",
		EnterQuestion:       "Please enter a question",
		SearchFailed:        "Search failed",
		AskFailed:           "Ask failed",
		Papers:              "Papers",
		NoResults:           "No papers found",
		ResultsCount:        "(%d papers)",
		DownloadPDF:         "Download PDF",
		QASection:           "Ask a question",
		Answer:              "Answer",
		Sources:             "Sources",
		TimeLayout:          "2006-01-02 15:04:05",
	}
}

// ChineseLabels returns the Chinese label set.
func ChineseLabels() Labels {
	return Labels{
		Title:               "论文搜索与问答",
		QueryPlaceholder:    "输入搜索关键词",
		QuestionPlaceholder: "针对搜索到的论文提问",
		Search:              "搜索",
		Ask:                 "提问",
		AskBusy:             "思考中...",
		Loading:             "搜索中...",
		EnterQuery:          "请输入搜索关键词",
		EnterQuestion:       "请输入问题",
		SearchFailed:        "搜索失败",
		AskFailed:           "提问失败",
		Papers:              "论文",
		NoResults:           "未找到相关论文",
		ResultsCount:        "(%d篇)",
		DownloadPDF:         "下载PDF",
		QASection:           "智能问答",
		Answer:              "回答",
		Sources:             "引用来源",
		TimeLayout:          "2006/1/2 15:04:05",
	}
}

// LabelsFor returns the label set of a locale.
// Unknown locales fall back to English.
func LabelsFor(l Locale) Labels {
	if l == LocaleChinese {
		return ChineseLabels()
	}
	return DefaultLabels()
}

// FormatResultsCount renders the count label for n papers.
func (l Labels) FormatResultsCount(n int) string {
	return fmt.Sprintf(l.ResultsCount, n)
}

// FailureTitle returns the notice title for a failed operation.
func (l Labels) FailureTitle(op Operation) string {
	if op == OpAsk {
		return l.AskFailed
	}
	return l.SearchFailed
}
