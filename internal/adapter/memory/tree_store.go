// Package memory holds the in-memory tree store backing every project.
package memory

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasktrio/internal/core/domain"
	"tasktrio/internal/core/ports"
)

const maxIDAttempts = 8

type level int

const (
	levelProject level = iota
	levelTask
	levelSubtask
	levelActionItem
)

// nodeRef records where an id lives. Only forward ownership is stored in the
// tree itself; the index is a side table kept in step with every mutation.
type nodeRef struct {
	level     level
	projectID string
	taskID    string
	subtaskID string
}

type Option func(*TreeStore)

// WithClock overrides the timestamp source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *TreeStore) { s.now = now }
}

// WithIDGenerator overrides the id source. Generated ids that collide with an
// existing one are retried.
func WithIDGenerator(newID func() string) Option {
	return func(s *TreeStore) { s.newID = newID }
}

type TreeStore struct {
	mu       sync.RWMutex
	projects []*domain.Project
	index    map[string]nodeRef
	now      func() time.Time
	newID    func() string
}

var _ ports.TreeStore = (*TreeStore)(nil)

func NewTreeStore(opts ...Option) *TreeStore {
	s := &TreeStore{
		index: make(map[string]nodeRef),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TreeStore) ListProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]domain.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project.Clone())
	}
	return projects, nil
}

func (s *TreeStore) GetProject(_ context.Context, projectID string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, _, err := s.findProject(projectID)
	if err != nil {
		return domain.Project{}, err
	}
	return project.Clone(), nil
}

func (s *TreeStore) CreateProject(_ context.Context, name string) (domain.Project, error) {
	if err := domain.ValidateName(name); err != nil {
		return domain.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.allocateID(nil)
	if err != nil {
		return domain.Project{}, err
	}

	project := &domain.Project{
		ID:        id,
		Name:      name,
		Tasks:     []domain.Task{},
		CreatedAt: s.now(),
	}
	s.projects = append(s.projects, project)
	s.index[id] = nodeRef{level: levelProject, projectID: id}
	return project.Clone(), nil
}

func (s *TreeStore) UpdateProject(_ context.Context, projectID, name string) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, _, err := s.findProject(projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if err := domain.ValidateName(name); err != nil {
		return domain.Project{}, err
	}

	project.Name = name
	return project.Clone(), nil
}

func (s *TreeStore) DeleteProject(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, pos, err := s.findProject(projectID)
	if err != nil {
		return err
	}

	s.unindexProject(project)
	s.projects = slices.Delete(s.projects, pos, pos+1)
	return nil
}

// DuplicateProject deep-copies a project, giving every node a fresh id.
func (s *TreeStore) DuplicateProject(_ context.Context, projectID string) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, _, err := s.findProject(projectID)
	if err != nil {
		return domain.Project{}, err
	}

	// Ids are reserved in a scratch set first so a failed allocation leaves
	// the store untouched.
	reserved := make(map[string]struct{})
	fresh := func() (string, error) { return s.allocateID(reserved) }

	clone := original.Clone()
	if clone.ID, err = fresh(); err != nil {
		return domain.Project{}, err
	}
	clone.Name = "Copy of " + original.Name
	clone.CreatedAt = s.now()
	if clone.Tasks == nil {
		clone.Tasks = []domain.Task{}
	}

	for i := range clone.Tasks {
		task := &clone.Tasks[i]
		if task.ID, err = fresh(); err != nil {
			return domain.Project{}, err
		}
		for j := range task.Subtasks {
			subtask := &task.Subtasks[j]
			if subtask.ID, err = fresh(); err != nil {
				return domain.Project{}, err
			}
			for k := range subtask.ActionItems {
				if subtask.ActionItems[k].ID, err = fresh(); err != nil {
					return domain.Project{}, err
				}
			}
		}
	}

	duplicate := &clone
	s.projects = append(s.projects, duplicate)
	s.indexProject(duplicate)
	return duplicate.Clone(), nil
}

func (s *TreeStore) AddTask(_ context.Context, projectID string, in domain.NewItemInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, _, err := s.findProject(projectID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Task{}, err
	}

	id, err := s.allocateID(nil)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.NewTask(id, in, s.now())
	project.Tasks = append(project.Tasks, task)
	s.index[id] = nodeRef{level: levelTask, projectID: projectID}
	return task.Clone(), nil
}

func (s *TreeStore) UpdateTask(_ context.Context, projectID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(projectID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := patch.Validate(); err != nil {
		return domain.Task{}, err
	}

	patch.Apply(task)
	return task.Clone(), nil
}

func (s *TreeStore) DeleteTask(_ context.Context, projectID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, _, err := s.findProject(projectID)
	if err != nil {
		return err
	}
	pos := slices.IndexFunc(project.Tasks, func(t domain.Task) bool { return t.ID == taskID })
	if pos < 0 {
		return domain.ErrTaskNotFound
	}

	s.unindexTask(&project.Tasks[pos])
	project.Tasks = slices.Delete(project.Tasks, pos, pos+1)
	return nil
}

// AddSubtask appends a subtask and expands its parent task so it is visible.
func (s *TreeStore) AddSubtask(_ context.Context, projectID, taskID string, in domain.NewItemInput) (domain.Subtask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(projectID, taskID)
	if err != nil {
		return domain.Subtask{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Subtask{}, err
	}

	id, err := s.allocateID(nil)
	if err != nil {
		return domain.Subtask{}, err
	}

	subtask := domain.NewSubtask(id, in, s.now())
	task.Subtasks = append(task.Subtasks, subtask)
	task.Expanded = true
	s.index[id] = nodeRef{level: levelSubtask, projectID: projectID, taskID: taskID}
	return subtask.Clone(), nil
}

func (s *TreeStore) UpdateSubtask(_ context.Context, projectID, taskID, subtaskID string, patch domain.SubtaskPatch) (domain.Subtask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtask, err := s.findSubtask(projectID, taskID, subtaskID)
	if err != nil {
		return domain.Subtask{}, err
	}
	if err := patch.Validate(); err != nil {
		return domain.Subtask{}, err
	}

	patch.Apply(subtask)
	return subtask.Clone(), nil
}

func (s *TreeStore) DeleteSubtask(_ context.Context, projectID, taskID, subtaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(projectID, taskID)
	if err != nil {
		return err
	}
	pos := slices.IndexFunc(task.Subtasks, func(st domain.Subtask) bool { return st.ID == subtaskID })
	if pos < 0 {
		return domain.ErrSubtaskNotFound
	}

	s.unindexSubtask(&task.Subtasks[pos])
	task.Subtasks = slices.Delete(task.Subtasks, pos, pos+1)
	return nil
}

// AddActionItem appends an action item and expands its parent subtask.
func (s *TreeStore) AddActionItem(_ context.Context, projectID, taskID, subtaskID string, in domain.NewItemInput) (domain.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtask, err := s.findSubtask(projectID, taskID, subtaskID)
	if err != nil {
		return domain.ActionItem{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.ActionItem{}, err
	}

	id, err := s.allocateID(nil)
	if err != nil {
		return domain.ActionItem{}, err
	}

	item := domain.NewActionItem(id, in, s.now())
	subtask.ActionItems = append(subtask.ActionItems, item)
	subtask.Expanded = true
	s.index[id] = nodeRef{level: levelActionItem, projectID: projectID, taskID: taskID, subtaskID: subtaskID}
	return item.Clone(), nil
}

func (s *TreeStore) UpdateActionItem(_ context.Context, projectID, taskID, subtaskID, actionItemID string, patch domain.ActionItemPatch) (domain.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.findActionItem(projectID, taskID, subtaskID, actionItemID)
	if err != nil {
		return domain.ActionItem{}, err
	}
	if err := patch.Validate(); err != nil {
		return domain.ActionItem{}, err
	}

	patch.Apply(item)
	return item.Clone(), nil
}

func (s *TreeStore) DeleteActionItem(_ context.Context, projectID, taskID, subtaskID, actionItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtask, err := s.findSubtask(projectID, taskID, subtaskID)
	if err != nil {
		return err
	}
	pos := slices.IndexFunc(subtask.ActionItems, func(a domain.ActionItem) bool { return a.ID == actionItemID })
	if pos < 0 {
		return domain.ErrActionItemNotFound
	}

	delete(s.index, actionItemID)
	subtask.ActionItems = slices.Delete(subtask.ActionItems, pos, pos+1)
	return nil
}

// ToggleExpanded flips the expanded flag of a task, or of one of its
// subtasks when kind is subtask. Unknown ids fail with a not-found error.
func (s *TreeStore) ToggleExpanded(_ context.Context, projectID, taskID string, kind domain.NodeKind, subtaskID string) error {
	if !kind.Valid() {
		return domain.ErrInvalidKind
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if kind == domain.NodeKindTask {
		task, err := s.findTask(projectID, taskID)
		if err != nil {
			return err
		}
		task.Expanded = !task.Expanded
		return nil
	}

	subtask, err := s.findSubtask(projectID, taskID, subtaskID)
	if err != nil {
		return err
	}
	subtask.Expanded = !subtask.Expanded
	return nil
}

// FlattenActionItems returns a sequence over every action item of the
// project in tree order. The sequence walks a snapshot taken at call time and
// can be ranged over any number of times.
func (s *TreeStore) FlattenActionItems(_ context.Context, projectID string) (iter.Seq[domain.ActionItemRef], error) {
	s.mu.RLock()
	project, _, err := s.findProject(projectID)
	if err != nil {
		s.mu.RUnlock()
		return nil, err
	}
	snapshot := project.Clone()
	s.mu.RUnlock()

	return func(yield func(domain.ActionItemRef) bool) {
		for _, task := range snapshot.Tasks {
			for _, subtask := range task.Subtasks {
				for _, item := range subtask.ActionItems {
					ref := domain.ActionItemRef{
						ID:   item.ID,
						Name: item.Name,
						Path: task.Name + " > " + subtask.Name + " > " + item.Name,
					}
					if !yield(ref) {
						return
					}
				}
			}
		}
	}, nil
}

func (s *TreeStore) FindActionItem(_ context.Context, projectID, actionItemID string) (domain.ActionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, err := s.resolveActionItem(projectID, actionItemID)
	if err != nil {
		return domain.ActionItem{}, err
	}
	return item.Clone(), nil
}

func (s *TreeStore) AddTimeSpent(_ context.Context, projectID, actionItemID string, minutes int) (domain.ActionItem, error) {
	if minutes < 0 || minutes > domain.MaxTrackedMinutes {
		return domain.ActionItem{}, domain.ErrInvalidTimeSpent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.resolveActionItem(projectID, actionItemID)
	if err != nil {
		return domain.ActionItem{}, err
	}
	if item.TimeSpent > domain.MaxTrackedMinutes-minutes {
		return domain.ActionItem{}, domain.ErrInvalidTimeSpent
	}
	item.TimeSpent += minutes
	return item.Clone(), nil
}

func (s *TreeStore) Locate(_ context.Context, path domain.NodePath) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var err error
	switch {
	case path.ActionItemID != "":
		_, err = s.findActionItem(path.ProjectID, path.TaskID, path.SubtaskID, path.ActionItemID)
	case path.SubtaskID != "":
		_, err = s.findSubtask(path.ProjectID, path.TaskID, path.SubtaskID)
	case path.TaskID != "":
		_, err = s.findTask(path.ProjectID, path.TaskID)
	default:
		_, _, err = s.findProject(path.ProjectID)
	}
	return err
}

// resolveActionItem uses the id index to locate an action item when only
// its project is known.
func (s *TreeStore) resolveActionItem(projectID, actionItemID string) (*domain.ActionItem, error) {
	if _, _, err := s.findProject(projectID); err != nil {
		return nil, err
	}
	ref, ok := s.index[actionItemID]
	if !ok || ref.level != levelActionItem || ref.projectID != projectID {
		return nil, domain.ErrActionItemNotFound
	}
	return s.findActionItem(ref.projectID, ref.taskID, ref.subtaskID, actionItemID)
}

func (s *TreeStore) findProject(projectID string) (*domain.Project, int, error) {
	if ref, ok := s.index[projectID]; !ok || ref.level != levelProject {
		return nil, -1, domain.ErrProjectNotFound
	}
	pos := slices.IndexFunc(s.projects, func(p *domain.Project) bool { return p.ID == projectID })
	if pos < 0 {
		return nil, -1, fmt.Errorf("project %s indexed but missing: %w", projectID, domain.ErrInternal)
	}
	return s.projects[pos], pos, nil
}

func (s *TreeStore) findTask(projectID, taskID string) (*domain.Task, error) {
	project, _, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}
	pos := slices.IndexFunc(project.Tasks, func(t domain.Task) bool { return t.ID == taskID })
	if pos < 0 {
		return nil, domain.ErrTaskNotFound
	}
	return &project.Tasks[pos], nil
}

func (s *TreeStore) findSubtask(projectID, taskID, subtaskID string) (*domain.Subtask, error) {
	task, err := s.findTask(projectID, taskID)
	if err != nil {
		return nil, err
	}
	pos := slices.IndexFunc(task.Subtasks, func(st domain.Subtask) bool { return st.ID == subtaskID })
	if pos < 0 {
		return nil, domain.ErrSubtaskNotFound
	}
	return &task.Subtasks[pos], nil
}

func (s *TreeStore) findActionItem(projectID, taskID, subtaskID, actionItemID string) (*domain.ActionItem, error) {
	subtask, err := s.findSubtask(projectID, taskID, subtaskID)
	if err != nil {
		return nil, err
	}
	pos := slices.IndexFunc(subtask.ActionItems, func(a domain.ActionItem) bool { return a.ID == actionItemID })
	if pos < 0 {
		return nil, domain.ErrActionItemNotFound
	}
	return &subtask.ActionItems[pos], nil
}

// allocateID returns an id unused by the store and by reserved, which it
// then records in reserved when non-nil.
func (s *TreeStore) allocateID(reserved map[string]struct{}) (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, taken := s.index[id]; taken {
			continue
		}
		if _, taken := reserved[id]; taken {
			continue
		}
		if reserved != nil {
			reserved[id] = struct{}{}
		}
		return id, nil
	}
	return "", fmt.Errorf("could not allocate a unique id: %w", domain.ErrInternal)
}

func (s *TreeStore) indexProject(project *domain.Project) {
	s.index[project.ID] = nodeRef{level: levelProject, projectID: project.ID}
	for _, task := range project.Tasks {
		s.index[task.ID] = nodeRef{level: levelTask, projectID: project.ID}
		for _, subtask := range task.Subtasks {
			s.index[subtask.ID] = nodeRef{level: levelSubtask, projectID: project.ID, taskID: task.ID}
			for _, item := range subtask.ActionItems {
				s.index[item.ID] = nodeRef{
					level:     levelActionItem,
					projectID: project.ID,
					taskID:    task.ID,
					subtaskID: subtask.ID,
				}
			}
		}
	}
}

func (s *TreeStore) unindexProject(project *domain.Project) {
	for i := range project.Tasks {
		s.unindexTask(&project.Tasks[i])
	}
	delete(s.index, project.ID)
}

func (s *TreeStore) unindexTask(task *domain.Task) {
	for i := range task.Subtasks {
		s.unindexSubtask(&task.Subtasks[i])
	}
	delete(s.index, task.ID)
}

func (s *TreeStore) unindexSubtask(subtask *domain.Subtask) {
	for _, item := range subtask.ActionItems {
		delete(s.index, item.ID)
	}
	delete(s.index, subtask.ID)
}
