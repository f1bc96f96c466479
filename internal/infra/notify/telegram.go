// Package notify — доставка готового отчёта администратору в Telegram.
// Это только канал доставки: интерактивного бота здесь нет.
package notify

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

// New создаёт отправителя. Пустой токен — уведомления выключены,
// возвращается nil и все вызовы Send становятся no-op.
func New(token string, chatID int64, log *slog.Logger) (*Notifier, error) {
	if token == "" {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{api: api, chatID: chatID, log: log}, nil
}

// Send отправляет текст в админский чат. Ошибка доставки не должна
// ломать расчёт — логируем и живём дальше.
func (n *Notifier) Send(text string) {
	if n == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.log.Error("send failed", "err", err)
	}
}
