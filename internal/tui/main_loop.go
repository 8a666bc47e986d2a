package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-area-keeper/internal/events"
	"github.com/MKhiriev/go-area-keeper/internal/service"
	"github.com/MKhiriev/go-area-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listPageSize = 10

type formMode int

const (
	formNone formMode = iota
	formAdd
	formEdit
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	items      []models.Area
	categories models.CategoryMap
	idx        int
	page       int
	search     string
	hasAreas   bool

	loading bool
	syncing bool
	offline bool
	status  string
	errMsg  string
	detail  bool

	searching   bool
	searchInput textinput.Model

	form           formMode
	formInputs     []textinput.Model
	formNotes      textarea.Model
	formFocus      int
	formSubmitting bool
	formErr        string
	editTarget     models.Area

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
		hasAreas: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadCategories(), m.cmdLoadPage())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.err == nil {
			m.categories = msg.categories
		}
		return m, nil
	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.hasAreas = msg.hasAreas
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case reconcileDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	case areaDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Запись удалена"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPage()
	case detailLoadedMsg:
		if msg.err != nil {
			// keep showing the copy already loaded with the list
			return m, nil
		}
		for i := range m.items {
			if m.items[i].ID == msg.area.ID {
				m.items[i] = msg.area
				break
			}
		}
		return m, nil
	case areaSavedMsg:
		m.formSubmitting = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		if m.form == formAdd {
			m.status = "Запись добавлена!"
		} else {
			m.status = "Запись обновлена"
		}
		m.resetForm()
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPage()
	case engineEventMsg:
		return m.applyEngineEvent(msg.event)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != formNone {
			return m.updateForm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.form != formNone {
		return m.updateForm(msg)
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "left":
		if m.page > 0 {
			m.page--
			m.loading = true
			return m, m.cmdLoadPage()
		}
	case "right":
		// last page is detected by an underfilled result set
		if len(m.items) == listPageSize {
			m.page++
			m.loading = true
			return m, m.cmdLoadPage()
		}
	case "a":
		m.startAdd()
		return m, nil
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, m.cmdSync()
	case "/":
		m.startSearch()
		return m, nil
	case "enter":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.detail = true
		return m, m.cmdLoadDetails(item.ID)
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.startEdit(item)
		return m, nil
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdDelete(item.ID)
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

// applyEngineEvent folds bus notifications into UI state. Background
// reconciliation passes and offline recordings surface here.
func (m mainLoopModel) applyEngineEvent(e events.Event) (tea.Model, tea.Cmd) {
	switch e := e.(type) {
	case events.OfflineModifications:
		m.offline = true
		m.status = "Есть несинхронизированные изменения"
	case events.SyncDone:
		m.offline = false
		m.status = "Синхронизация завершена"
		m.loading = true
		return m, m.cmdLoadPage()
	case events.PageNetworkError:
		m.status = "Сервер недоступен, показаны локальные данные"
	case events.CategoriesError:
		m.errMsg = fmt.Sprintf("Ошибка справочника категорий: %v", e.Err)
	case events.PageError:
		m.errMsg = fmt.Sprintf("Ошибка загрузки списка: %v", e.Err)
	case events.DetailsError:
		m.errMsg = fmt.Sprintf("Ошибка загрузки записи: %v", e.Err)
	case events.AddError:
		m.errMsg = fmt.Sprintf("Ошибка добавления: %v", e.Err)
	case events.UpdateError:
		m.errMsg = fmt.Sprintf("Ошибка изменения: %v", e.Err)
	case events.DeleteError:
		m.errMsg = fmt.Sprintf("Ошибка удаления: %v", e.Err)
	}
	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false
	case "e":
		m.detail = false
		m.startEdit(item)
		return m, nil
	case "ctrl+d":
		m.detail = false
		return m, m.cmdDelete(item.ID)
	case "c":
		if strings.TrimSpace(item.Notes) == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(item.Notes); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	}
	return m, nil
}

func (m *mainLoopModel) startSearch() {
	input := textinput.New()
	input.Placeholder = "поиск по названию"
	input.Width = 40
	input.SetValue(m.search)
	input.Focus()

	m.searchInput = input
	m.searching = true
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			if m.search != "" {
				m.search = ""
				m.page = 0
				m.loading = true
				return m, m.cmdLoadPage()
			}
			return m, nil
		case "enter":
			m.searching = false
			m.search = strings.TrimSpace(m.searchInput.Value())
			m.page = 0
			m.loading = true
			return m, m.cmdLoadPage()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) startAdd() {
	m.form = formAdd
	m.initFormInputs(models.Area{})
}

func (m *mainLoopModel) startEdit(item models.Area) {
	m.form = formEdit
	m.editTarget = item
	m.initFormInputs(item)
}

func (m *mainLoopModel) initFormInputs(item models.Area) {
	name := textinput.New()
	name.Placeholder = "Название"
	name.Width = 40
	name.SetValue(item.Name)
	name.Focus()

	category := textinput.New()
	category.Placeholder = "Код категории (можно пусто)"
	category.Width = 40
	category.SetValue(item.CategoryCode)

	notes := textarea.New()
	notes.Placeholder = "Заметки (опционально)"
	notes.SetWidth(54)
	notes.SetHeight(4)
	notes.SetValue(item.Notes)

	m.formInputs = []textinput.Model{name, category}
	m.formNotes = notes
	m.formFocus = 0
	m.formSubmitting = false
	m.formErr = ""
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, nil
		case "tab":
			m.formCycle(1)
			return m, nil
		case "shift+tab":
			m.formCycle(-1)
			return m, nil
		case "ctrl+s":
			if m.formSubmitting {
				return m, nil
			}

			name := strings.TrimSpace(m.formInputs[0].Value())
			if name == "" {
				m.formErr = "нужно название."
				return m, nil
			}

			m.formErr = ""
			m.formSubmitting = true
			if m.form == formAdd {
				return m, m.cmdCreate(models.Area{
					Name:         name,
					CategoryCode: strings.TrimSpace(m.formInputs[1].Value()),
					Notes:        strings.TrimSpace(m.formNotes.Value()),
				})
			}
			return m, m.cmdUpdate(m.editTarget.ID, m.buildPatch())
		}
	}

	var cmd tea.Cmd
	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	} else {
		m.formNotes, cmd = m.formNotes.Update(msg)
	}
	return m, cmd
}

// buildPatch sends only the fields that differ from the edited record.
func (m mainLoopModel) buildPatch() models.AreaPatch {
	var patch models.AreaPatch

	if name := strings.TrimSpace(m.formInputs[0].Value()); name != m.editTarget.Name {
		patch.Name = &name
	}
	if category := strings.TrimSpace(m.formInputs[1].Value()); category != m.editTarget.CategoryCode {
		patch.CategoryCode = &category
	}
	if notes := strings.TrimSpace(m.formNotes.Value()); notes != m.editTarget.Notes {
		patch.Notes = &notes
	}

	return patch
}

func (m *mainLoopModel) formCycle(delta int) {
	total := len(m.formInputs) + 1 // inputs plus the notes textarea

	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus].Blur()
	} else {
		m.formNotes.Blur()
	}

	m.formFocus = (m.formFocus + delta + total) % total

	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus].Focus()
	} else {
		m.formNotes.Focus()
	}
}

func (m *mainLoopModel) resetForm() {
	m.form = formNone
	m.formInputs = nil
	m.formFocus = 0
	m.formSubmitting = false
	m.formErr = ""
	m.editTarget = models.Area{}
}

func (m mainLoopModel) View() string {
	if m.form != formNone {
		return m.viewForm()
	}

	if m.searching {
		out := "Поиск     : [ " + m.searchInput.View() + " ]\n"
		return renderPage("ПОИСК", strings.TrimRight(out, "\n"), "enter: применить │ esc: сбросить")
	}

	if m.detail {
		item, ok := m.current()
		if !ok {
			return renderPage("ПРОСМОТР ЗАПИСИ", "Запись не найдена", "esc: назад")
		}
		return m.viewDetail(item)
	}

	out := ""

	if m.loading {
		out += "Загрузка списка...\n"
		return renderPage("ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(out, "\n"), m.listHotKeys())
	}

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if m.offline {
		out += "⚠ Есть офлайн-изменения, нажмите s для синхронизации\n"
	}
	if m.search != "" {
		out += "Фильтр: \"" + m.search + "\"\n"
	}

	if !m.hasAreas {
		if out != "" {
			out += "\n"
		}
		out += "У вас пока нет участков. Нажмите a, чтобы добавить первый.\n"
		return renderPage("ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(out, "\n"), m.listHotKeys())
	}

	if len(m.items) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Ничего не найдено\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "    │ Название                 │ Категория       │ Синхр.\n"
		out += "────┼──────────────────────────┼─────────────────┼────────\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-2d│ %-24s │ %-15s │ %s\n",
				cursor,
				m.page*listPageSize+i+1,
				fitText(item.Name, 24),
				fitText(m.categoryLabel(item.CategoryCode), 15),
				pendingLabel(item.Pending),
			)
		}
		out += fmt.Sprintf("\nСтраница %d\n", m.page+1)
	}

	return renderPage("ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(out, "\n"), m.listHotKeys())
}

func (m mainLoopModel) listHotKeys() string {
	return "a: добавить │ s: синхр. │ /: поиск │ enter: открыть │ e: изм. │ ctrl+d: уд. │ ←/→: стр. │ l: выход"
}

func (m mainLoopModel) viewForm() string {
	out := "Поле      │ Значение\n"
	out += "──────────┼──────────────────────────────────────────\n"
	out += "Название  │ [" + m.formInputs[0].View() + "]\n"
	out += "Категория │ [" + m.formInputs[1].View() + "]\n"
	out += "Заметки:\n"
	out += m.formNotes.View() + "\n"
	if m.formSubmitting {
		out += "\n[Сохранение...]\n"
	} else {
		out += "\n[Сохранить]\n"
	}
	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}

	title := "НОВЫЙ УЧАСТОК"
	if m.form == formEdit {
		title = "ИЗМЕНЕНИЕ УЧАСТКА"
	}
	return renderPage(title, strings.TrimRight(out, "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}

func (m mainLoopModel) viewDetail(item models.Area) string {
	var b strings.Builder

	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("Название  : " + item.Name + "\n")
	b.WriteString("Категория : " + valueOrDash(m.categoryLabel(item.CategoryCode)) + "\n")
	b.WriteString("Синхр.    : " + pendingLabel(item.Pending) + "\n")
	if item.CreatedAt != nil {
		b.WriteString("Создан    : " + item.CreatedAt.Format("2006-01-02 15:04") + "\n")
	}
	if item.UpdatedAt != nil {
		b.WriteString("Изменён   : " + item.UpdatedAt.Format("2006-01-02 15:04") + "\n")
	}

	b.WriteString("\n[ ЗАМЕТКИ ]\n")
	if strings.TrimSpace(item.Notes) != "" {
		b.WriteString(item.Notes + "\n")
	} else {
		b.WriteString("(пусто)\n")
	}

	title := "УЧАСТОК: " + item.Name
	hotKeys := "e: изменить │ c: копировать заметки │ ctrl+d: удалить │ esc: назад"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) categoryLabel(code string) string {
	if code == "" {
		return ""
	}
	if text, ok := m.categories.Text(code); ok {
		return text
	}
	return code
}

func pendingLabel(p models.PendingFlags) string {
	switch p.ReconcileAction() {
	case models.ReconcileDelete:
		return "× удал."
	case models.ReconcileAdd:
		return "+ нов."
	case models.ReconcileUpdate:
		return "~ изм."
	default:
		return "✓"
	}
}

func (m mainLoopModel) current() (models.Area, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Area{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) cmdLoadPage() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AreaService
	page, search := m.page, m.search

	return func() tea.Msg {
		items, hasAreas, err := svc.FetchPage(ctx, page, listPageSize, search)
		return pageLoadedMsg{items: items, hasAreas: hasAreas, err: err}
	}
}

func (m mainLoopModel) cmdLoadCategories() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AreaService

	return func() tea.Msg {
		categories, err := svc.FetchCategories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m mainLoopModel) cmdLoadDetails(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AreaService

	return func() tea.Msg {
		area, err := svc.FetchDetails(ctx, id)
		return detailLoadedMsg{area: area, err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AreaService

	return func() tea.Msg {
		err := svc.ReconcileAll(ctx)
		return reconcileDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AreaService

	return func() tea.Msg {
		err := svc.DeleteArea(ctx, id)
		return areaDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdCreate(area models.Area) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AreaService

	return func() tea.Msg {
		_, err := svc.AddArea(ctx, area)
		return areaSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdate(id string, patch models.AreaPatch) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AreaService

	return func() tea.Msg {
		_, err := svc.UpdateArea(ctx, id, patch)
		return areaSavedMsg{err: err}
	}
}
