package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pickFirst(n int) int { return 0 }

func TestAssistantReplyHelpKeyword(t *testing.T) {
	got := assistantReply(pickFirst, "Нужна помощь с настройкой", "Test")
	assert.Contains(t, got, "Совет по теме 'Test'")
	assert.True(t, strings.HasSuffix(got, " 🤖"))
}

func TestAssistantReplyGratitudeKeyword(t *testing.T) {
	got := assistantReply(pickFirst, "Большое спасибо!", "Test")
	assert.Equal(t, gratitudeTemplates[0]+" 🤖", got)
}

func TestAssistantReplyErrorKeyword(t *testing.T) {
	got := assistantReply(pickFirst, "у меня ошибка при запуске", "Test")
	assert.Equal(t, errorTemplates[0]+" 🤖", got)
}

func TestAssistantReplySecurityKeyword(t *testing.T) {
	got := assistantReply(pickFirst, "как хранить пароль", "Test")
	// "как" is a help keyword and help outranks security.
	assert.Contains(t, got, "Совет по теме")

	got = assistantReply(pickFirst, "пароль в открытом виде", "Test")
	assert.Equal(t, securityTemplates[0]+" 🤖", got)
}

func TestAssistantReplyDefaultBucket(t *testing.T) {
	got := assistantReply(pickFirst, "просто мысли вслух", "Go Generics")
	assert.Contains(t, got, "в контексте 'Go Generics'")
}

func TestAssistantReplyPrecedence(t *testing.T) {
	// help > error > gratitude > security when several buckets match.
	got := assistantReply(pickFirst, "помощь ошибка спасибо пароль", "T")
	assert.Equal(t, "💡 Совет по теме 'T': Попробуйте сначала изучить официальную документацию. Часто ответы на базовые вопросы уже есть там! 🤖", got)

	got = assistantReply(pickFirst, "ошибка спасибо пароль", "T")
	assert.Equal(t, errorTemplates[0]+" 🤖", got)

	got = assistantReply(pickFirst, "спасибо пароль", "T")
	assert.Equal(t, gratitudeTemplates[0]+" 🤖", got)
}

func TestAssistantReplyCaseInsensitive(t *testing.T) {
	got := assistantReply(pickFirst, "СПАСИБО", "T")
	assert.Equal(t, gratitudeTemplates[0]+" 🤖", got)
}

func TestAssistantReplyPicksWithinBucket(t *testing.T) {
	for i := range gratitudeTemplates {
		idx := i
		got := assistantReply(func(n int) int { return idx % n }, "спасибо", "T")
		assert.Equal(t, gratitudeTemplates[idx]+" 🤖", got)
	}
}

func TestAssistantReplyExportedIsStable(t *testing.T) {
	// The exported entry point must stay within the classified bucket no
	// matter what the picker chooses.
	for i := 0; i < 20; i++ {
		got := AssistantReply("спасибо, благодарю!", "T")
		found := false
		for _, tmpl := range gratitudeTemplates {
			if got == tmpl+" 🤖" {
				found = true
			}
		}
		assert.True(t, found, "reply %q escaped the gratitude bucket", got)
	}
}
