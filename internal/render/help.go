package render

import (
	"strings"

	"github.com/f3rmion/texbot/internal/symbols"
)

// HelpMessages returns the /help text as three messages: main macros, Greek
// letters, and operators with functions and constants.
func HelpMessages() []string {
	macros := "<b>Основные Макросы:</b>\n(Основаны на TeX)\n\n" + Table(symbols.MainMacros)

	greek := "\n<b>Греческие Символы:</b>\n\n" + Table(symbols.Greek)

	var b strings.Builder
	b.WriteString("\n<b>Операторы:</b>\n\n")
	b.WriteString(Table(symbols.Operators))
	b.WriteString("\n<b>Функции:</b>\n\n")
	b.WriteString(Table(symbols.RootConsts))
	b.WriteString("\n<b>Константы:</b>\n\n")
	b.WriteString(Table(symbols.Constants))
	b.WriteString("\nА так же поддерживаются индексы и степени (с помощью <code>^</code>)")
	b.WriteString("\nЕсли между двумя числами стоит <code>_</code>," +
		" то второе считается индексом первого (для указания основания системы счисления)")
	b.WriteString("\nПолный список макросов можно получить командой <code>/macros</code>")

	return []string{macros, greek, b.String()}
}

// MacroMessages returns the full macro list split into messages of about
// perMessage lines.
func MacroMessages(perMessage int) []string {
	text := "<b>Все Макросы:</b>\n(Основаны на TeX)\n\n" + Table(symbols.FullMacros)
	return SplitLines(text, perMessage)
}
