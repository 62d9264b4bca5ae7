package llm

import "strings"

// MaxCaptionRunes caps every caption, model-generated or rule-based.
const MaxCaptionRunes = 40

type captionRule struct {
	keywords []string
	caption  string
}

// captionRules maps title keywords to fixed captions. Order matters:
// the first matching rule wins. Downstream consumers depend on the
// exact captions, so the table content must not drift.
var captionRules = []captionRule{
	{[]string{"価格", "料金", "値上げ", "値下げ"}, "価格交渉・ROI訴求の材料に"},
	{[]string{"生成AI", "AI", "人工知能"}, "入力ハードルと定着の議論に直結"},
	{[]string{"SFA", "CRM"}, "“入力ハードル”改善の好例として"},
	{[]string{"ABM", "アカウント", "大口", "エンタープライズ"}, "面攻略のアカウント設計に活用"},
	{[]string{"事例", "成功", "導入", "ケース"}, "会議体×見える化の裏付けに"},
	{[]string{"人手不足", "採用", "離職", "働き方"}, "生産性起点の訴求に合致"},
	{[]string{"調査", "レポート", "統計"}, "データ根拠として引用しやすい"},
}

const defaultCaption = "提案の刺さり所の仮説づくりに"

// RuleCaption looks the title up in the fixed rule table. Matching is
// case-insensitive substring containment against the title only.
func RuleCaption(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range captionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.caption
			}
		}
	}
	return defaultCaption
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
