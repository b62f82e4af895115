package schema

import "regexp"

// ToolPattern matches a direct AI tool mention in a commit message.
type ToolPattern struct {
	Pattern *regexp.Regexp
	Tool    string
}

// BotPattern matches a Co-authored-by trailer naming a known bot identity.
type BotPattern struct {
	Pattern *regexp.Regexp
	Bot     string
}

// MessageHeuristic is a stylistic tell of AI-authored commit messages.
// Weights for a single message are summed and capped at 1.0.
type MessageHeuristic struct {
	Pattern *regexp.Regexp
	Name    string
	Weight  float64
}

// ToolPatterns is the ordered table of direct AI tool signatures.
var ToolPatterns = []ToolPattern{
	{regexp.MustCompile(`(?i)\bcopilot\b`), "GitHub Copilot"},
	{regexp.MustCompile(`(?i)\bchatgpt\b|\bchat-gpt\b|\bgpt-4o?\b|\bgpt-3\.?5\b`), "ChatGPT/OpenAI"},
	{regexp.MustCompile(`(?i)\bgemini\b`), "Google Gemini"},
	{regexp.MustCompile(`(?i)\bclaude\b|\banthrop`), "Claude/Anthropic"},
	{regexp.MustCompile(`(?i)\bcursor\b`), "Cursor"},
	{regexp.MustCompile(`(?i)\bcodeium\b`), "Codeium"},
	{regexp.MustCompile(`(?i)\btabnine\b`), "Tabnine"},
	{regexp.MustCompile(`(?i)\bcody\b`), "Sourcegraph Cody"},
	{regexp.MustCompile(`(?i)\bsupermaven\b`), "Supermaven"},
	{regexp.MustCompile(`(?i)\bwindsurf\b`), "Windsurf"},
	{regexp.MustCompile(`(?i)\baider\b`), "Aider"},
	{regexp.MustCompile(`(?i)\bai[- ]generated\b|\bai[- ]assisted\b|\bai[- ]powered\b`), "AI-Assisted (generic)"},
	{regexp.MustCompile(`(?i)\bgenerated\s+(?:by|with|using)\s+ai\b`), "AI-Generated (generic)"},
	{regexp.MustCompile(`(?i)\bllm\b|\blarge\s+language\s+model\b`), "LLM (generic)"},
}

// BotPatterns is the table of Co-authored-by bot signatures.
var BotPatterns = []BotPattern{
	{regexp.MustCompile(`(?i)co-authored-by:\s*.*copilot`), "GitHub Copilot"},
	{regexp.MustCompile(`(?i)co-authored-by:\s*.*\[bot\]`), "Bot"},
	{regexp.MustCompile(`(?i)co-authored-by:\s*.*dependabot`), "Dependabot"},
	{regexp.MustCompile(`(?i)co-authored-by:\s*.*renovate`), "Renovate"},
	{regexp.MustCompile(`(?i)co-authored-by:\s*.*snyk`), "Snyk"},
	{regexp.MustCompile(`(?i)co-authored-by:\s*.*github-actions`), "GitHub Actions"},
	{regexp.MustCompile(`(?i)co-authored-by:\s*.*deepsource`), "DeepSource"},
}

// MessageHeuristics is the weighted table of message-shape heuristics.
var MessageHeuristics = []MessageHeuristic{
	// Very generic, potentially auto-generated messages
	{regexp.MustCompile(`(?i)^(update|fix|refactor|improve|add|remove|clean)\s+\w+$`), "generic_single_word_action", 0.1},
	// Overly detailed single-line commits
	{regexp.MustCompile(`^.{150,}$`), "overly_verbose_single_line", 0.15},
	// Conventional commit with very detailed scope
	{regexp.MustCompile(`(?i)^(feat|fix|docs|style|refactor|test|chore)\(.{30,}\):`), "detailed_conventional_commit", 0.05},
	// "Implement" as first word
	{regexp.MustCompile(`(?i)^implement(ed|s|ing)?\s`), "implement_prefix", 0.1},
	// Long descriptive messages starting with articles
	{regexp.MustCompile(`(?i)^(This|The|A|An)\s+(commit|change|update|patch|PR|pull request)\s`), "article_prefix_commit", 0.2},
}

// CoAuthorRegex extracts Name <email> pairs from Co-authored-by trailers.
var CoAuthorRegex = regexp.MustCompile(`(?im)co-authored-by:\s*(.+?)\s*<(.+?)>`)

// AINamePattern flags repositories whose name or description suggests AI work.
var AINamePattern = regexp.MustCompile(`(?i)ai|ml|gpt|llm|neural|model|predict|classify|detect|nlp|bert|transformer|diffusion|rag|agent`)

// AIConfigPattern flags repository metadata mentioning AI assistant config
// files such as .cursorrules or copilot-instructions. File trees are not
// available, so detection works off name/description/topic text.
var AIConfigPattern = regexp.MustCompile(`(?i)copilot[- ]?instructions|cursorrules|\.aider|codeium|tabnine|continue|windsurf`)

// TopicToolKeyword maps a repo-topic substring to the tool name it implies.
type TopicToolKeyword struct {
	Keyword string
	Tool    string
}

// TopicToolKeywords is the table used to surface tool names from repo topics.
var TopicToolKeywords = []TopicToolKeyword{
	{"copilot", "GitHub Copilot"},
	{"chatgpt", "ChatGPT/OpenAI"},
	{"openai", "ChatGPT/OpenAI"},
	{"gemini", "Google Gemini"},
	{"bard", "Google Gemini"},
	{"claude", "Claude"},
	{"cursor", "Cursor"},
	{"windsurf", "Windsurf"},
	{"aider", "Aider"},
}
