package http

import (
	"time"

	"pro-todo-backend/internal/model"
	"pro-todo-backend/internal/stats"
	"pro-todo-backend/internal/task"
)

// --- Request DTOs ---

type repeatReq struct {
	Type    string `json:"type"    binding:"required,oneof=daily weekly monthly"`
	Weekday string `json:"weekday" binding:"omitempty,oneof=sunday monday tuesday wednesday thursday friday saturday"`
}

func (r *repeatReq) toRule() *model.RepeatRule {
	if r == nil {
		return nil
	}
	return &model.RepeatRule{
		Type:    model.RepeatType(r.Type),
		Weekday: r.Weekday,
	}
}

type quickReq struct {
	Text        string     `json:"text" binding:"required"`
	Area        string     `json:"area" binding:"omitempty,oneof=Personal Work"`
	SelectedDay *time.Time `json:"selectedDay"`
}

func (r quickReq) toInput() task.QuickAddInput {
	return task.QuickAddInput{
		Text:        r.Text,
		Area:        model.Area(r.Area),
		SelectedDay: r.SelectedDay,
	}
}

type createReq struct {
	Title    string     `json:"title"    binding:"required,min=1,max=500"`
	Tags     []string   `json:"tags"`
	Project  string     `json:"project"  binding:"max=255"`
	Area     string     `json:"area"     binding:"omitempty,oneof=Personal Work"`
	Priority string     `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Due      *time.Time `json:"due"`
	Repeat   *repeatReq `json:"repeat"`
	Reminder int        `json:"reminder" binding:"omitempty,min=0"`
	Notes    string     `json:"notes"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:    r.Title,
		Tags:     r.Tags,
		Project:  r.Project,
		Area:     model.Area(r.Area),
		Priority: model.Priority(r.Priority),
		Due:      r.Due,
		Repeat:   r.Repeat.toRule(),
		Reminder: r.Reminder,
		Notes:    r.Notes,
	}
}

type updateReq struct {
	Title       *string    `json:"title"    binding:"omitempty,min=1,max=500"`
	Notes       *string    `json:"notes"`
	Project     *string    `json:"project"  binding:"omitempty,max=255"`
	Area        *string    `json:"area"     binding:"omitempty,oneof=Personal Work"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Tags        *[]string  `json:"tags"`
	Due         *time.Time `json:"due"`
	ClearDue    bool       `json:"clearDue"`
	Repeat      *repeatReq `json:"repeat"`
	ClearRepeat bool       `json:"clearRepeat"`
	Reminder    *int       `json:"reminder" binding:"omitempty,min=0"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		Title:       r.Title,
		Notes:       r.Notes,
		Project:     r.Project,
		Tags:        r.Tags,
		Due:         r.Due,
		ClearDue:    r.ClearDue,
		Repeat:      r.Repeat.toRule(),
		ClearRepeat: r.ClearRepeat,
		Reminder:    r.Reminder,
	}
	if r.Area != nil {
		area := model.Area(*r.Area)
		in.Area = &area
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		in.Priority = &priority
	}
	return in
}

type rescheduleReq struct {
	Day           *time.Time `json:"day"`
	SnoozeMinutes int        `json:"snoozeMinutes"`
}

func (r rescheduleReq) toInput() task.RescheduleInput {
	return task.RescheduleInput{
		Day:           r.Day,
		SnoozeMinutes: r.SnoozeMinutes,
	}
}

type subtaskReq struct {
	Title string `json:"title" binding:"required,min=1,max=500"`
}

type importReq struct {
	Tasks    []model.Task     `json:"tasks"`
	Projects []string         `json:"projects"`
	Points   int              `json:"points"`
	History  []stats.DayCount `json:"history"`
}

func (r importReq) toInput() task.ImportInput {
	return task.ImportInput{
		State: task.State{
			Tasks:    r.Tasks,
			Projects: r.Projects,
			Points:   r.Points,
			History:  r.History,
		},
	}
}

// --- Response DTOs ---

type subtaskResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type repeatResp struct {
	Type    string `json:"type"`
	Weekday string `json:"weekday,omitempty"`
}

type taskResp struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Tags        []string      `json:"tags"`
	Project     string        `json:"project"`
	Area        string        `json:"area"`
	Priority    string        `json:"priority"`
	Due         *time.Time    `json:"due,omitempty"`
	Repeat      *repeatResp   `json:"repeat,omitempty"`
	Reminder    int           `json:"reminder"`
	Completed   bool          `json:"completed"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	Subtasks    []subtaskResp `json:"subtasks"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Tags:        t.Tags,
		Project:     t.Project,
		Area:        string(t.Area),
		Priority:    string(t.Priority),
		Due:         t.Due,
		Reminder:    t.Reminder,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.Repeat != nil {
		resp.Repeat = &repeatResp{
			Type:    string(t.Repeat.Type),
			Weekday: t.Repeat.Weekday,
		}
	}
	resp.Subtasks = make([]subtaskResp, len(t.Subtasks))
	for i, st := range t.Subtasks {
		resp.Subtasks[i] = subtaskResp{ID: st.ID, Title: st.Title, Done: st.Done}
	}
	return resp
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

type toggleResp struct {
	Task    taskResp  `json:"task"`
	Spawned *taskResp `json:"spawned,omitempty"`
}

func newToggleResp(out task.ToggleOutput) toggleResp {
	resp := toggleResp{Task: newTaskResp(out.Task)}
	if out.Spawned != nil {
		spawned := newTaskResp(*out.Spawned)
		resp.Spawned = &spawned
	}
	return resp
}

type exportResp struct {
	Tasks    []taskResp       `json:"tasks"`
	Projects []string         `json:"projects"`
	Points   int              `json:"points"`
	History  []stats.DayCount `json:"history"`
}

func newExportResp(state task.State) exportResp {
	return exportResp{
		Tasks:    newTaskResps(state.Tasks),
		Projects: state.Projects,
		Points:   state.Points,
		History:  state.History,
	}
}

type importResp struct {
	Imported int `json:"imported"`
}
