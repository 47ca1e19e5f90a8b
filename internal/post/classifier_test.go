package post

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Schedule(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "upper case day",
			input: "ПОНЕДЕЛЬНИК\nАлгебра\nФизика",
			want:  "📝 <b>Понедельник:</b>\n🖊 Алгебра\n🖊 Физика\n#расписание",
		},
		{
			name:  "mixed case day with padding",
			input: "  вТоРнИк \nХимия",
			want:  "📝 <b>Вторник:</b>\n🖊 Химия\n#расписание",
		},
		{
			name:  "trailing hashtag dropped",
			input: "среда\nИстория\n#история",
			want:  "📝 <b>Среда:</b>\n🖊 История\n#расписание",
		},
		{
			name:  "non-tag last line kept",
			input: "четверг\nГеометрия\nдомашка #5",
			want:  "📝 <b>Четверг:</b>\n🖊 Геометрия\n🖊 домашка #5\n#расписание",
		},
		{
			name:  "day only",
			input: "Пятница",
			want:  "📝 <b>Пятница:</b>\n#расписание",
		},
		{
			name:  "empty body line kept",
			input: "суббота\n\nОтдых",
			want:  "📝 <b>Суббота:</b>\n🖊 \n🖊 Отдых\n#расписание",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_AllWeekdaysAnyCase(t *testing.T) {
	for _, day := range DefaultWeekdays {
		for _, variant := range []string{day, strings.ToLower(day), " " + strings.ToLower(day[:2]) + day[2:] + " "} {
			got, ok := Classify(variant + "\nтекст")
			require.True(t, ok, "day %q", variant)

			title := capitalize(strings.ToLower(day))
			assert.True(t, strings.HasPrefix(got, ScheduleMarker+" <b>"+title+":</b>"), got)
			assert.True(t, strings.HasSuffix(got, ScheduleTag), got)
		}
	}
}

func TestClassify_News(t *testing.T) {
	got, ok := Classify("a\nb\n#НОВОСТИ")
	require.True(t, ok)
	assert.Equal(t, "📰 <b>Новости:</b>\n➕ a\n➕ b\n#НОВОСТИ", got)
}

func TestClassify_NewsKeepsOriginalTag(t *testing.T) {
	got, ok := Classify("Собрание в пятницу\n  #новости  ")
	require.True(t, ok)
	assert.Equal(t, "📰 <b>Новости:</b>\n➕ Собрание в пятницу\n#новости", got)
}

func TestClassify_Subject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "english alias with qualifier",
			input: "Упр. 5 стр. 10\n#англ_B1",
			want:  "📓 <b>Английский язык (B1):</b>\n🖊 Упр. 5 стр. 10\n#англ_B1",
		},
		{
			name:  "OBZh unchanged",
			input: "Реферат\n#ОБЖ",
			want:  "📓 <b>ОБЖ:</b>\n🖊 Реферат\n#ОБЖ",
		},
		{
			name:  "capitalized subject",
			input: "№ 123\n#алгебра",
			want:  "📓 <b>Алгебра:</b>\n🖊 № 123\n#алгебра",
		},
		{
			name:  "rest of subject untouched",
			input: "Лабораторная\n#инФОРМатика_2гр",
			want:  "📓 <b>ИнФОРМатика (2гр):</b>\n🖊 Лабораторная\n#инФОРМатика_2гр",
		},
		{
			name:  "news with qualifier is a subject",
			input: "текст\n#новости_школы",
			want:  "📓 <b>Новости (школы):</b>\n🖊 текст\n#новости_школы",
		},
		{
			name:  "latin subject",
			input: "ДЗ\n#math",
			want:  "📓 <b>Math:</b>\n🖊 ДЗ\n#math",
		},
		{
			name:  "tag only",
			input: "#химия",
			want:  "📓 <b>Химия:</b>\n#химия",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Unchanged(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "plain text", input: "Просто сообщение\nбез тегов"},
		{name: "tag not on last line", input: "#алгебра\nзадача 5"},
		{name: "tag followed by text", input: "задача\n#алгебра срочно"},
		{name: "two tags", input: "задача\n#алгебра #геометрия"},
		{name: "tag with punctuation", input: "задача\n#алгебра!"},
		{name: "weekday not on first line", input: "расписание\nПОНЕДЕЛЬНИК"},
		{name: "already schedule", input: "📝 <b>Понедельник:</b>\n🖊 Алгебра\n#расписание"},
		{name: "already news", input: "  📰 <b>Новости:</b>\n➕ a\n#НОВОСТИ"},
		{name: "already subject", input: "\n📓 <b>ОБЖ:</b>\n#ОБЖ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.input)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	inputs := []string{
		"понедельник\nАлгебра",
		"a\nb\n#НОВОСТИ",
		"Упр. 5\n#англ_B1",
		"Реферат\n#ОБЖ",
	}

	for _, input := range inputs {
		out, ok := Classify(input)
		require.True(t, ok, input)

		again, ok := Classify(out)
		assert.False(t, ok, out)
		assert.Empty(t, again)
	}
}

func TestClassifier_CustomWeekdays(t *testing.T) {
	c := NewClassifier([]string{"Monday", "Tuesday"})

	got, ok := c.Classify("MONDAY\nMath")
	require.True(t, ok)
	assert.Equal(t, "📝 <b>Monday:</b>\n🖊 Math\n#расписание", got)

	assert.False(t, c.IsWeekday("ПОНЕДЕЛЬНИК"))
	assert.True(t, c.IsWeekday(" tuesday "))
}

func TestClassifier_MultiWordWeekdayHeader(t *testing.T) {
	c := NewClassifier([]string{"Day one", "Day two"})

	got, ok := c.Classify("DAY ONE\nGym")
	require.True(t, ok)
	assert.Equal(t, "📝 <b>Day one:</b>\n🖊 Gym\n#расписание", got)
}

func TestClassifier_Parse(t *testing.T) {
	p, ok := NewClassifier(nil).Parse("x\ny\n#англ")
	require.True(t, ok)

	assert.Equal(t, KindSubject, p.Kind)
	assert.Equal(t, "Английский язык", p.Title)
	assert.Equal(t, []string{"x", "y"}, p.Lines)
	assert.Equal(t, "#англ", p.Tag)
	assert.Equal(t, "📓 <b>Английский язык:</b>", p.Header())
}

func TestParseHashtag(t *testing.T) {
	tests := []struct {
		line string
		want Hashtag
		ok   bool
	}{
		{line: "#НОВОСТИ", want: Hashtag{Tag: "#НОВОСТИ", Subject: "НОВОСТИ"}, ok: true},
		{line: "  #англ_B1 ", want: Hashtag{Tag: "#англ_B1", Subject: "англ", Qualifier: "B1"}, ok: true},
		{line: "#a_b_c", want: Hashtag{Tag: "#a_b_c", Subject: "a", Qualifier: "b_c"}, ok: true},
		{line: "#10класс", want: Hashtag{Tag: "#10класс", Subject: "10класс"}, ok: true},
		{line: "#ёлка", ok: false},
		{line: "#", ok: false},
		{line: "#_x", ok: false},
		{line: "text #tag", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseHashtag(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, ScheduleMarker, KindSchedule.Marker())
	assert.Equal(t, NewsMarker, KindNews.Marker())
	assert.Equal(t, SubjectMarker, KindSubject.Marker())
	assert.Equal(t, PlusPrefix, KindNews.LinePrefix())
	assert.Equal(t, PenPrefix, KindSubject.LinePrefix())
	assert.Equal(t, "news", KindNews.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestClassifier_ConcurrentUse(t *testing.T) {
	c := NewClassifier(nil)
	inputs := []string{"среда\nФизика", "Экскурсия\n#новости", "Тест\n#англ_B1"}

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(in string) {
			defer wg.Done()
			out, ok := c.Classify(in)
			assert.True(t, ok)
			again, changed := c.Classify(out)
			assert.False(t, changed)
			assert.Empty(t, again)
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
}
