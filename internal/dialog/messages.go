package dialog

import (
	"fmt"
	"time"

	"github.com/m3rciful/tasktracker/core/telegram/format"
	"github.com/m3rciful/tasktracker/internal/tasks"
)

// Task status markers shown in task details.
const (
	StatusInProgress = "⌛ В процессе!"
	StatusDone       = "✅ Выполнена!"
)

const (
	textWelcome = "👋 *Привет!* \n\nЯ бот, *планировщик задач!* Могу помочь тебе составить список задач и следить за дедлайнами!"

	textHelp = "🔧 *Доступные команды:*\n" +
		"*/start* - начать работу\n" +
		"*/add_task* - добавить задачу\n" +
		"*/my_tasks* - посмотреть задачи\n" +
		"*/menu* - показать меню\n" +
		"*/help* - доступные команды"

	textUnknownCommand   = "Вот актуальные команды:"
	textChooseAction     = "Выберите действие:"
	textTaskNamePrompt   = "Дай название своей задаче!"
	textCategoryPrompt   = "Выберите категорию задачи:"
	textNewCategory      = "Введите название категории!"
	textDescription      = "Добавь описание своей задаче:"
	textTaskAdded        = "✅ Задача добавлена!"
	textBadDeadline      = "Неверный формат даты! Введите в формате ДД/ММ/ГГГГ ЧЧ:ММ:"
	textNoActiveTasks    = "У вас нет активных задач!"
	textNoCompletedTasks = "Вы еще не выполнили ни одной задачи!"
	textBackToMenu       = "Возврат в меню!"
	textChooseTask       = "Выберите задачу:"
	textEditPrompt       = "Что вы хотите сделать с задачей?"
	textAlreadyDone      = "✖ Задача уже отмечена как выполнена!"
	textTaskCompleted    = "Задача выполнена!"
)

func mainMenuOptions() [][]string {
	return [][]string{
		{LabelAddTask, LabelMyTasks},
		{LabelDoneTasks, LabelHelp},
	}
}

// categoryOptions lays out one category per row plus the add-new affordance.
func categoryOptions(categories []string) [][]string {
	rows := make([][]string, 0, len(categories)+1)
	for _, c := range categories {
		rows = append(rows, []string{c})
	}
	return append(rows, []string{LabelAddCategory})
}

// taskListOptions lays out one task name per row plus the cancel affordance.
func taskListOptions(names []string) [][]string {
	rows := make([][]string, 0, len(names)+1)
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	return append(rows, []string{LabelCancel})
}

func editMenuOptions() [][]string {
	return [][]string{
		{LabelComplete},
		{LabelBack},
	}
}

// deadlinePrompt shows the required format rendered against the current time,
// so the user sees a concrete example rather than a pattern.
func deadlinePrompt(now time.Time) string {
	return fmt.Sprintf("Когда задача должна быть выполнена? \n(дата должна быть в формате %s)", tasks.FormatDeadline(now))
}

// taskDetail renders the full card of an active or completed task.
// User-supplied fields are escaped so stray markdown characters do not
// break the surrounding emphasis markers.
func taskDetail(t tasks.Task) string {
	status := StatusInProgress
	if t.Completed {
		status = StatusDone
	}
	return fmt.Sprintf("*%s* из категории *%s*\nОписание - %s Выполнить до: *%s*\n%s",
		format.EscapeV1(t.Name),
		format.EscapeV1(t.Category),
		format.EscapeV1(t.Description),
		tasks.FormatDeadline(t.Deadline),
		status,
	)
}

// completedDetail renders the shorter card used by the done-tasks listing.
func completedDetail(t tasks.Task) string {
	return fmt.Sprintf("*%s* из категории *%s*\nОписание - %s \n%s",
		format.EscapeV1(t.Name),
		format.EscapeV1(t.Category),
		format.EscapeV1(t.Description),
		StatusDone,
	)
}
