package pkg

import (
	"fmt"
	"math/rand"
	"strings"
)

// Keyword buckets for the canned assistant. Order matters: the first bucket
// that matches wins, so "помощь ... ошибка" is classified as help-seeking.
var (
	helpKeywords      = []string{"помощь", "помогите", "не знаю", "совет", "как"}
	errorKeywords     = []string{"ошибка", "баг", "не работает", "сломалось", "проблема"}
	gratitudeKeywords = []string{"спасибо", "благодарю", "отлично", "класс", "понял"}
	securityKeywords  = []string{"безопасность", "пароль", "данные", "хакер", "угроза"}
)

// Reply templates per bucket. "%s" is replaced with the post title.
var (
	helpTemplates = []string{
		"💡 Совет по теме '%s': Попробуйте сначала изучить официальную документацию. Часто ответы на базовые вопросы уже есть там!",
		"🔍 Рекомендую поискать похожие проблемы на форуме. Возможно, кто-то уже сталкивался с этим!",
		"📚 Для решения подобных задач полезно ознакомиться с основами. Начните с простых примеров и постепенно усложняйте задачу.",
	}
	errorTemplates = []string{
		"🛠️ При возникновении ошибок: 1) Проверьте логи, 2) Убедитесь, что все зависимости установлены, 3) Попробуйте воспроизвести проблему на чистом окружении.",
		"🐞 Совет по отладке: добавьте больше логов в код, чтобы отследить, на каком этапе возникает проблема. Часто причина скрыта в неожиданном месте!",
		"✅ Проверьте распространённые причины: опечатки в коде, неправильные пути к файлам, устаревшие версии библиотек.",
	}
	gratitudeTemplates = []string{
		"😊 Рад, что помог! Если возникнут ещё вопросы — обращайтесь. Обучение — это процесс, и у всех бывают трудности.",
		"🌟 Отлично, что разобрались! Теперь вы сможете помочь другим участникам форума с похожими вопросами.",
		"🚀 Продолжайте в том же духе! Каждая решённая проблема делает вас лучше как специалиста.",
	}
	securityTemplates = []string{
		"🔒 Важно помнить: никогда не храните пароли в открытом виде. Всегда используйте хеширование (например, bcrypt) и HTTPS для передачи данных.",
		"🛡️ Для защиты от атак: регулярно обновляйте зависимости, используйте параметризованные запросы против SQL-инъекций, и ограничивайте права доступа.",
		"⚠️ Будьте осторожны с личными данными! Никогда не публикуйте реальные пароли, ключи API или конфиденциальную информацию в публичных обсуждениях.",
	}
	defaultTemplates = []string{
		"🤔 Интересная мысль! Добавлю, что в контексте '%s' также важно учитывать...",
		"💡 Дополню ваш комментарий: многие сталкиваются с подобным. Полезный лайфхак — ...",
		"📚 Если хотите глубже изучить тему '%s', рекомендую посмотреть материалы по...",
		"✨ Ваш комментарий поднимает важный аспект. Стоит также обратить внимание на...",
	}
)

const assistantSuffix = " 🤖"

// AssistantReply classifies the comment into one of five buckets and returns
// a randomly chosen canned template. Stateless keyword matching, nothing more.
func AssistantReply(commentText, postTitle string) string {
	return assistantReply(rand.Intn, commentText, postTitle)
}

// assistantReply takes the picker as a parameter so tests can pin the choice.
func assistantReply(pick func(int) int, commentText, postTitle string) string {
	lower := strings.ToLower(commentText)

	var pool []string
	switch {
	case containsAny(lower, helpKeywords):
		pool = helpTemplates
	case containsAny(lower, errorKeywords):
		pool = errorTemplates
	case containsAny(lower, gratitudeKeywords):
		pool = gratitudeTemplates
	case containsAny(lower, securityKeywords):
		pool = securityTemplates
	default:
		pool = defaultTemplates
	}

	tmpl := pool[pick(len(pool))]
	if strings.Contains(tmpl, "%s") {
		tmpl = fmt.Sprintf(tmpl, postTitle)
	}
	return tmpl + assistantSuffix
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
