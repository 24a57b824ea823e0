package feeds

import "strings"

// AI keyword lists for filtering general news feeds. The mixed JA/EN terms
// match the sources the site follows.
var keywordsCommon = []string{
	"AI", "人工知能", "生成AI", "生成型AI", "大規模言語モデル", "LLM", "機械学習", "深層学習",
	"chatgpt", "gpt", "openai", "anthropic", "claude", "llama", "gemini", "copilot",
	"stable diffusion", "midjourney", "mistral", "cohere", "perplexity", "hugging face", "langchain",
	"rag", "ベンチマーク", "推論", "微調整", "ファインチューニング", "画像生成", "動画生成", "sora", "nemo", "nim", "blackwell",
}

var keywordsBusiness = []string{
	"規制", "法規制", "ガイドライン", "政府", "省庁", "投資", "資金調達", "ipo", "買収", "m&a",
	"提携", "合意", "価格", "料金", "企業導入", "商用利用", "市場", "売上", "収益", "雇用", "監督", "規制当局", "コンプライアンス",
}

var keywordsTools = []string{
	"api", "sdk", "モデル", "リリース", "アップデート", "ベータ", "プレビュー", "オープンソース", "oss",
	"サンプル", "チュートリアル", "パッケージ", "ライブラリ", "バージョン", "benchmark", "throughput", "latency", "性能", "推論速度",
}

// negativeHints drop clearly off-topic general news before keyword matching.
var negativeHints = []string{"スポーツ", "天気", "為替", "相場", "観光", "レシピ", "占い"}

func keywordsFor(category string, extra []string) []string {
	var kw []string
	switch category {
	case "Business":
		kw = append(kw, keywordsCommon...)
		kw = append(kw, keywordsBusiness...)
	case "Tools":
		kw = append(kw, keywordsCommon...)
		kw = append(kw, keywordsTools...)
	default:
		kw = append(kw, keywordsCommon...)
	}
	return append(kw, extra...)
}

func matchesAnyKeyword(text string, keywords []string) bool {
	s := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
