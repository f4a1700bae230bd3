package llm

import (
	log "log/slog"
	"os"
	"strings"
)

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "file", file, "err", err)
		return ""
	}
	return string(data)
}

// truncateRunes 截断到前 n 个字符，控制送入模型的内容长度
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// stripFences 去掉模型输出外层的 markdown 代码围栏
func stripFences(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
