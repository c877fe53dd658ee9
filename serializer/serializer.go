// Package serializer shapes entities into response bodies. Each entity has a
// Summary (scalar fields only) and a full form embedding its related entities
// as Summaries. Related entities are never embedded in full form — that fixed
// rule is what breaks the User/Task/Project/Team reference cycles, instead of
// runtime cycle detection. Password hashes and updated_at stamps never leave
// the server.
package serializer

import (
	"time"

	"projecthub/models"
)

type UserSummary struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	DateCreated time.Time  `json:"date_created"`
	LastLogin   *time.Time `json:"last_login"`
	IsActive    bool       `json:"is_active"`
	IsAdmin     bool       `json:"is_admin"`
}

type User struct {
	UserSummary
	Tasks            []TaskSummary        `json:"tasks"`
	Files            []FileSummary        `json:"files"`
	Teams            []TeamSummary        `json:"teams"`
	Calendars        []CalendarSummary    `json:"calendars"`
	SentMessages     []ChatMessageSummary `json:"sent_messages"`
	ReceivedMessages []ChatMessageSummary `json:"received_messages"`
}

type TeamSummary struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DateCreated     time.Time `json:"date_created"`
	CreatedByUserID uint      `json:"created_by_user_id"`
}

type Team struct {
	TeamSummary
	User     *UserSummary     `json:"user,omitempty"`
	Projects []ProjectSummary `json:"projects"`
}

type ProjectSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TeamID      uint   `json:"team_id"`
}

type Project struct {
	ProjectSummary
	Team  *TeamSummary  `json:"team,omitempty"`
	Tasks []TaskSummary `json:"tasks"`
	Files []FileSummary `json:"files"`
}

type TaskSummary struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	DueDate          string `json:"due_date"`
	Priority         int    `json:"priority"`
	AssignedToUserID uint   `json:"assigned_to_user_id"`
	ProjectID        uint   `json:"project_id"`
}

type Task struct {
	TaskSummary
	User    *UserSummary    `json:"user,omitempty"`
	Project *ProjectSummary `json:"project,omitempty"`
}

type FileSummary struct {
	ID               uint      `json:"id"`
	Filename         string    `json:"filename"`
	Description      string    `json:"description"`
	FileType         string    `json:"file_type"`
	Size             int       `json:"size"`
	DateUploaded     time.Time `json:"date_uploaded"`
	UploadedByUserID uint      `json:"uploaded_by_user_id"`
	ProjectID        uint      `json:"project_id"`
}

type File struct {
	FileSummary
	User    *UserSummary    `json:"user,omitempty"`
	Project *ProjectSummary `json:"project,omitempty"`
}

type CalendarSummary struct {
	ID               uint      `json:"id"`
	EventName        string    `json:"event_name"`
	EventDescription string    `json:"event_description"`
	EventDate        string    `json:"event_date"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedByUserID  uint      `json:"created_by_user_id"`
}

type Calendar struct {
	CalendarSummary
	User *UserSummary `json:"user,omitempty"`
}

type ChatMessageSummary struct {
	ID             uint      `json:"id"`
	MessageText    string    `json:"message_text"`
	MessageDate    time.Time `json:"message_date"`
	SenderUserID   uint      `json:"sender_user_id"`
	ReceiverUserID uint      `json:"receiver_user_id"`
}

type ChatMessage struct {
	ChatMessageSummary
	Sender   *UserSummary `json:"sender,omitempty"`
	Receiver *UserSummary `json:"receiver,omitempty"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DateCreated: u.DateCreated,
		LastLogin:   u.LastLogin,
		IsActive:    u.IsActive,
		IsAdmin:     u.IsAdmin,
	}
}

func NewUser(u *models.User) *User {
	out := &User{
		UserSummary:      NewUserSummary(u),
		Tasks:            make([]TaskSummary, 0, len(u.Tasks)),
		Files:            make([]FileSummary, 0, len(u.Files)),
		Teams:            make([]TeamSummary, 0, len(u.Teams)),
		Calendars:        make([]CalendarSummary, 0, len(u.Calendars)),
		SentMessages:     make([]ChatMessageSummary, 0, len(u.SentMessages)),
		ReceivedMessages: make([]ChatMessageSummary, 0, len(u.ReceivedMessages)),
	}
	for i := range u.Tasks {
		out.Tasks = append(out.Tasks, NewTaskSummary(&u.Tasks[i]))
	}
	for i := range u.Files {
		out.Files = append(out.Files, NewFileSummary(&u.Files[i]))
	}
	for i := range u.Teams {
		out.Teams = append(out.Teams, NewTeamSummary(&u.Teams[i]))
	}
	for i := range u.Calendars {
		out.Calendars = append(out.Calendars, NewCalendarSummary(&u.Calendars[i]))
	}
	for i := range u.SentMessages {
		out.SentMessages = append(out.SentMessages, NewChatMessageSummary(&u.SentMessages[i]))
	}
	for i := range u.ReceivedMessages {
		out.ReceivedMessages = append(out.ReceivedMessages, NewChatMessageSummary(&u.ReceivedMessages[i]))
	}
	return out
}

func NewUsers(users []models.User) []*User {
	out := make([]*User, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i]))
	}
	return out
}

func NewTeamSummary(t *models.Team) TeamSummary {
	return TeamSummary{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		DateCreated:     t.DateCreated,
		CreatedByUserID: t.CreatedByUserID,
	}
}

func NewTeam(t *models.Team) *Team {
	out := &Team{
		TeamSummary: NewTeamSummary(t),
		Projects:    make([]ProjectSummary, 0, len(t.Projects)),
	}
	if t.User != nil {
		summary := NewUserSummary(t.User)
		out.User = &summary
	}
	for i := range t.Projects {
		out.Projects = append(out.Projects, NewProjectSummary(&t.Projects[i]))
	}
	return out
}

func NewTeams(teams []models.Team) []*Team {
	out := make([]*Team, 0, len(teams))
	for i := range teams {
		out = append(out, NewTeam(&teams[i]))
	}
	return out
}

func NewProjectSummary(p *models.Project) ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		TeamID:      p.TeamID,
	}
}

func NewProject(p *models.Project) *Project {
	out := &Project{
		ProjectSummary: NewProjectSummary(p),
		Tasks:          make([]TaskSummary, 0, len(p.Tasks)),
		Files:          make([]FileSummary, 0, len(p.Files)),
	}
	if p.Team != nil {
		summary := NewTeamSummary(p.Team)
		out.Team = &summary
	}
	for i := range p.Tasks {
		out.Tasks = append(out.Tasks, NewTaskSummary(&p.Tasks[i]))
	}
	for i := range p.Files {
		out.Files = append(out.Files, NewFileSummary(&p.Files[i]))
	}
	return out
}

func NewProjects(projects []models.Project) []*Project {
	out := make([]*Project, 0, len(projects))
	for i := range projects {
		out = append(out, NewProject(&projects[i]))
	}
	return out
}

func NewTaskSummary(t *models.Task) TaskSummary {
	return TaskSummary{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           t.Status,
		DueDate:          t.DueDate,
		Priority:         t.Priority,
		AssignedToUserID: t.AssignedToUserID,
		ProjectID:        t.ProjectID,
	}
}

func NewTask(t *models.Task) *Task {
	out := &Task{TaskSummary: NewTaskSummary(t)}
	if t.User != nil {
		summary := NewUserSummary(t.User)
		out.User = &summary
	}
	if t.Project != nil {
		summary := NewProjectSummary(t.Project)
		out.Project = &summary
	}
	return out
}

func NewTasks(tasks []models.Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTask(&tasks[i]))
	}
	return out
}

func NewFileSummary(f *models.File) FileSummary {
	return FileSummary{
		ID:               f.ID,
		Filename:         f.Filename,
		Description:      f.Description,
		FileType:         f.FileType,
		Size:             f.Size,
		DateUploaded:     f.DateUploaded,
		UploadedByUserID: f.UploadedByUserID,
		ProjectID:        f.ProjectID,
	}
}

func NewFile(f *models.File) *File {
	out := &File{FileSummary: NewFileSummary(f)}
	if f.User != nil {
		summary := NewUserSummary(f.User)
		out.User = &summary
	}
	if f.Project != nil {
		summary := NewProjectSummary(f.Project)
		out.Project = &summary
	}
	return out
}

func NewFiles(files []models.File) []*File {
	out := make([]*File, 0, len(files))
	for i := range files {
		out = append(out, NewFile(&files[i]))
	}
	return out
}

func NewCalendarSummary(c *models.Calendar) CalendarSummary {
	return CalendarSummary{
		ID:               c.ID,
		EventName:        c.EventName,
		EventDescription: c.EventDescription,
		EventDate:        c.EventDate,
		CreatedAt:        c.CreatedAt,
		CreatedByUserID:  c.CreatedByUserID,
	}
}

func NewCalendar(c *models.Calendar) *Calendar {
	out := &Calendar{CalendarSummary: NewCalendarSummary(c)}
	if c.User != nil {
		summary := NewUserSummary(c.User)
		out.User = &summary
	}
	return out
}

func NewCalendars(calendars []models.Calendar) []*Calendar {
	out := make([]*Calendar, 0, len(calendars))
	for i := range calendars {
		out = append(out, NewCalendar(&calendars[i]))
	}
	return out
}

func NewChatMessageSummary(m *models.ChatMessage) ChatMessageSummary {
	return ChatMessageSummary{
		ID:             m.ID,
		MessageText:    m.MessageText,
		MessageDate:    m.MessageDate,
		SenderUserID:   m.SenderUserID,
		ReceiverUserID: m.ReceiverUserID,
	}
}

func NewChatMessage(m *models.ChatMessage) *ChatMessage {
	out := &ChatMessage{ChatMessageSummary: NewChatMessageSummary(m)}
	if m.Sender != nil {
		summary := NewUserSummary(m.Sender)
		out.Sender = &summary
	}
	if m.Receiver != nil {
		summary := NewUserSummary(m.Receiver)
		out.Receiver = &summary
	}
	return out
}

func NewChatMessages(messages []models.ChatMessage) []*ChatMessage {
	out := make([]*ChatMessage, 0, len(messages))
	for i := range messages {
		out = append(out, NewChatMessage(&messages[i]))
	}
	return out
}
