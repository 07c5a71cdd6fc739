package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/form"
	"github.com/abhisek/quizbank/internal/quiz"
)

type optionView struct {
	Key     bank.OptionKey
	Label   string
	Checked bool
}

type questionView struct {
	Position int
	Text     string
	Options  []optionView
	Answered bool
	Correct  bank.OptionKey
}

type pageData struct {
	Progress  string
	Warning   string
	Notice    string
	Submitted bool
	Questions []questionView
	Report    *quiz.Report
}

func buildPage(a *quiz.AppState, notice string) pageData {
	sess := a.Session
	data := pageData{
		Progress:  form.Progress(sess),
		Notice:    notice,
		Submitted: sess.Submitted(),
	}
	if w := sess.Warning; w != nil {
		data.Warning = w.Error()
	}
	for i, q := range sess.Questions() {
		pos := i + 1
		shown := form.DisplayedKey(sess, pos)
		_, answered := sess.Answer(pos)
		qv := questionView{Position: pos, Text: q.Text(), Answered: answered}
		if data.Submitted {
			qv.Correct = q.Correct()
		}
		for _, k := range bank.Keys() {
			qv.Options = append(qv.Options, optionView{
				Key:     k,
				Label:   form.Label(k, q.Option(k)),
				Checked: k == shown,
			})
		}
		data.Questions = append(data.Questions, qv)
	}
	if data.Submitted {
		if rep, err := quiz.Score(sess); err == nil {
			data.Report = rep
		}
	}
	return data
}

// withState resolves the browser's AppState from its cookie, setting a new
// cookie when the store had to create one.
func (s *Server) withState(w http.ResponseWriter, r *http.Request, fn func(*quiz.AppState) error) error {
	var id string
	if c, err := r.Cookie(CookieName); err == nil {
		id = c.Value
	}
	id, created, err := s.store.Do(id, fn)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		s.logger.Debug("browser session created", "id", id)
	}
	return err
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeOK(w, r, http.StatusOK, map[string]int{"sessions": s.store.Len()})
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	var data pageData
	_ = s.withState(w, r, func(a *quiz.AppState) error {
		data = buildPage(a, "")
		return nil
	})
	s.render(w, http.StatusOK, data)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	var (
		data     pageData
		position int
		key      bank.OptionKey
	)
	err := s.withState(w, r, func(a *quiz.AppState) error {
		var err error
		position, err = strconv.Atoi(r.PostFormValue("position"))
		if err != nil {
			err = &quiz.InteractionError{Reason: quiz.ReasonPosition, Position: position}
		} else if key, err = form.OptionKeyOf(position, r.PostFormValue("option")); err == nil {
			err = a.Session.RecordAnswer(position, key)
		}
		if err != nil {
			data = buildPage(a, err.Error())
		}
		return err
	})

	var ie *quiz.InteractionError
	switch {
	case errors.As(err, &ie):
		s.logger.Debug("answer rejected", "reason", ie.Reason, "position", ie.Position)
		if wantsJSON(r) {
			writeError(w, r, http.StatusUnprocessableEntity, ie.Error())
			return
		}
		s.render(w, http.StatusUnprocessableEntity, data)
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "")
	case wantsJSON(r):
		writeOK(w, r, http.StatusOK, map[string]any{"position": position, "key": key})
	default:
		http.Redirect(w, r, fmt.Sprintf("/#q%d", position), http.StatusSeeOther)
	}
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	_ = s.withState(w, r, func(a *quiz.AppState) error {
		if !a.Session.Submitted() {
			if _, err := form.CommitDisplayed(a.Session); err != nil {
				return err
			}
		}
		a.Session.Submit()
		if rep, err := quiz.Score(a.Session); err == nil {
			s.logger.Info("quiz submitted",
				"session", a.Session.ID,
				"points", rep.PointsEarned,
				"total", rep.TotalQuestions,
				"grade", rep.GradeOutOf10)
		}
		return nil
	})
	http.Redirect(w, r, "/#report", http.StatusSeeOther)
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	_ = s.withState(w, r, func(a *quiz.AppState) error {
		a.Reset()
		return nil
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) reportJSON(w http.ResponseWriter, r *http.Request) {
	var rep *quiz.Report
	err := s.withState(w, r, func(a *quiz.AppState) error {
		var err error
		rep, err = quiz.Score(a.Session)
		return err
	})
	switch {
	case errors.Is(err, quiz.ErrNotSubmitted):
		writeError(w, r, http.StatusConflict, "quiz has not been submitted")
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "")
	default:
		writeOK(w, r, http.StatusOK, rep)
	}
}
