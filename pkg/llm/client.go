package llm

import (
	"context"
	"fmt"
)

const captionTemperature = 0.2

const captionPromptTemplate = `あなたはB2Bエンタープライズ向けセールスイネーブルメント企業のPR担当です。
次のニュースが自社に与えうる影響を、20〜40字の一言で述べてください。
禁止：一般論/煽り/抽象語の羅列。歓迎：示唆・刺さり所・具体性。
自社語辞書：入力ハードル／会議体／定着／可視化／アカウントプラン
タイトル: %s
媒体: %s
スニペット: %s
出力：一言のみ。`

type CaptionInput struct {
	Title   string
	Media   string
	Snippet string
}

// Captioner produces a short business-impact caption for one story.
// Callers treat any error as a cue to fall back to RuleCaption.
type Captioner interface {
	Caption(ctx context.Context, in CaptionInput) (string, error)
}

func captionPrompt(in CaptionInput) string {
	return fmt.Sprintf(captionPromptTemplate, in.Title, in.Media, in.Snippet)
}
