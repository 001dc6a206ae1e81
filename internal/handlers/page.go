package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"miniapp-studio/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(
	template.New("pages").
		Funcs(template.FuncMap{
			"actionFor": domain.ActionFor,
			"price":     domain.FormatPrice,
		}).
		ParseFS(templatesFS, "templates/*.html"),
)

// StaticHandler раздаёт /static/* из бинарника
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type stepTab struct {
	Step   domain.Step
	Name   string
	Active bool
	Done   bool
}

type estimatorView struct {
	estimateResponse

	Tabs     []stepTab
	Current  *domain.StepInfo // nil на шаге результата
	ShowBack bool
	ShowNext bool
	Results  bool
	Anim     string
}

type landingPage struct {
	domain.Landing
	Estimator estimatorView
}

func (e *Env) estimatorView(sel domain.Selection) estimatorView {
	v := estimatorView{
		estimateResponse: e.estimate(sel),
		Current:          domain.FindStep(domain.Catalog(e.Pricing), sel.Step),
		ShowBack:         sel.Step > domain.FirstStep && !sel.IsResults(),
		ShowNext:         !sel.IsResults(),
		Results:          sel.IsResults(),
	}
	for _, s := range domain.AllSteps() {
		v.Tabs = append(v.Tabs, stepTab{Step: s, Name: domain.StepName(s), Active: s == sel.Step, Done: s < sel.Step})
	}
	switch sel.Direction {
	case domain.DirectionForward:
		v.Anim = "slide-forward"
	case domain.DirectionBackward:
		v.Anim = "slide-backward"
	}
	return v
}

// GET / — лендинг целиком, калькулятор на текущем шаге посетителя
func (e *Env) HandleLanding(w http.ResponseWriter, r *http.Request) {
	_, sel := e.session(w, r)

	page := landingPage{
		Landing:   e.Landing,
		Estimator: e.estimatorView(sel),
	}

	// рендерим в буфер, чтобы при ошибке шаблона не отдать половину страницы
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "index.html", page); err != nil {
		zap.S().Named("page").Errorw("render landing", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// POST /estimator — форма калькулятора без JS, Post/Redirect/Get
func (e *Env) HandleEstimatorForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
		return
	}

	a := domain.Action{
		Kind: domain.ActionKind(r.PostForm.Get("action")),
		ID:   r.PostForm.Get("id"),
	}
	if _, err := e.applyAction(w, r, a); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/#calculator", http.StatusSeeOther)
}
