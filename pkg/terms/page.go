// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/barbersoft/account-service/internal/i18n"
	"github.com/barbersoft/account-service/internal/identity"
)

var pageTemplate = template.Must(template.New("term-page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .Title}}{{.Title}}{{else}}Termo de Parceria{{end}} - BarberSoft</title>
<style>
body { font-family: Arial, sans-serif; background: #f4f4f5; margin: 0; padding: 16px; }
.card { max-width: 720px; margin: 32px auto; background: #fff; border-radius: 8px; padding: 24px; }
.contract { height: 400px; overflow-y: auto; border: 1px solid #e4e4e7; border-radius: 8px; padding: 16px; background: #fafafa; }
.notice { color: #b91c1c; }
.hint { color: #71717a; text-align: center; }
button { background: #FF6B00; color: #fff; border: 0; border-radius: 8px; padding: 12px 32px; font-size: 16px; }
button:disabled { opacity: .5; }
</style>
</head>
<body>
<div class="card">
{{- if .Error}}
  <h2>{{.Error}}</h2>
  <p>Entre em contato com o administrador da barbearia.</p>
{{- else if .Accepted}}
  <h2>Termo Aceito!</h2>
  <p>Obrigado, <strong>{{.BarberName}}</strong>! Seu aceite foi registrado com sucesso. Agora sua agenda pode ser ativada.</p>
  <p class="hint">Data: {{.AcceptedAt}}</p>
{{- else}}
  <h2>{{.Title}}</h2>
  <p>Versão {{.Version}} &bull; Olá, <strong>{{.BarberName}}</strong>! Leia o termo completo abaixo.</p>
  <div class="contract" id="contract">{{.Content}}</div>
  <p class="hint" id="scroll-hint">&darr; Role até o final para habilitar o aceite</p>
  {{- if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
  <form method="post">
    <input type="hidden" name="scrolled_to_end" id="scrolled" value="false">
    <p><label><input type="checkbox" name="accept" id="accept" disabled> Li e concordo com todos os termos acima.</label></p>
    <button type="submit" id="submit" disabled>Aceitar Termo</button>
  </form>
<script>
(function () {
  var threshold = {{.Threshold}};
  var box = document.getElementById("contract");
  var scrolled = document.getElementById("scrolled");
  var accept = document.getElementById("accept");
  var submit = document.getElementById("submit");
  function observe() {
    if (scrolled.value === "true") { return; }
    if (box.scrollTop + box.clientHeight >= box.scrollHeight - threshold) {
      scrolled.value = "true";
      accept.disabled = false;
      document.getElementById("scroll-hint").style.display = "none";
    }
  }
  box.addEventListener("scroll", observe);
  accept.addEventListener("change", function () { submit.disabled = !accept.checked; });
  observe();
})();
</script>
{{- end}}
</div>
</body>
</html>
`))

type pageData struct {
	Error      string
	Notice     string
	Accepted   bool
	AcceptedAt string
	BarberName string
	Title      string
	Version    string
	Content    template.HTML
	Threshold  int
}

func (a *API) renderPage(w http.ResponseWriter, status int, data pageData) {
	data.Threshold = ScrollThreshold

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		a.logger.Errorf("failed to render term page: %v", err)
	}
}

func (a *API) acceptancePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "terms.API.acceptancePage")
	defer span.End()

	acc, err := a.service.LoadAcceptance(ctx, chi.URLParam(r, "token"))
	if err != nil {
		status, msg := a.lookupError(r, err)
		a.renderPage(w, status, pageData{Error: msg})
		return
	}

	a.renderPage(w, http.StatusOK, formData(acc, ""))
}

func (a *API) submitAcceptance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "terms.API.submitAcceptance")
	defer span.End()

	token := chi.URLParam(r, "token")

	if err := r.ParseForm(); err != nil {
		a.renderPage(w, http.StatusBadRequest, pageData{Error: i18n.T(r, i18n.InvalidRequest)})
		return
	}

	acc, err := a.service.LoadAcceptance(ctx, token)
	if err != nil {
		status, msg := a.lookupError(r, err)
		a.renderPage(w, status, pageData{Error: msg})
		return
	}

	flow := NewFlow()
	_ = flow.Load()
	if r.PostForm.Get("scrolled_to_end") == "true" {
		flow.MarkScrolled()
	}

	err = flow.SetChecked(r.PostForm.Get("accept") == "on")
	if err == nil {
		err = flow.Accept()
	}
	switch {
	case errors.Is(err, ErrScrollRequired):
		a.renderPage(w, http.StatusBadRequest, formData(acc, i18n.T(r, i18n.ScrollRequired)))
		return
	case errors.Is(err, ErrCheckboxRequired):
		a.renderPage(w, http.StatusBadRequest, formData(acc, i18n.T(r, i18n.CheckboxRequired)))
		return
	case err != nil:
		a.renderPage(w, http.StatusBadRequest, formData(acc, i18n.T(r, i18n.InvalidRequest)))
		return
	}

	submitter := identity.FromContext(ctx)
	ok, err := a.service.Accept(ctx, AcceptRequest{
		Token:           token,
		TermID:          acc.Term.ID,
		ContentSnapshot: acc.Term.Content,
		CommissionRate:  acc.Barber.CommissionRate,
		IP:              submitter.IP,
		UserAgent:       submitter.UserAgent,
	})
	if errors.Is(err, ErrCommissionMismatch) {
		a.renderPage(w, http.StatusConflict, pageData{Error: i18n.T(r, i18n.CommissionChanged)})
		return
	}
	if !ok {
		if err != nil && !errors.Is(err, ErrAlreadyAccepted) {
			a.logger.Errorf("failed to accept term for barber %s: %v", acc.Barber.ID, err)
			a.renderPage(w, http.StatusInternalServerError, pageData{Error: i18n.T(r, i18n.InternalError)})
			return
		}
		a.renderPage(w, http.StatusConflict, pageData{Error: i18n.T(r, i18n.TermAlreadyAccepted)})
		return
	}

	a.renderPage(w, http.StatusOK, pageData{
		Accepted:   true,
		BarberName: acc.Barber.Name,
		AcceptedAt: time.Now().In(saoPaulo).Format("02/01/2006 15:04:05"),
	})
}

func formData(acc *Acceptance, notice string) pageData {
	return pageData{
		Notice:     notice,
		BarberName: acc.Barber.Name,
		Title:      acc.Term.Title,
		Version:    acc.Term.Version,
		Content:    template.HTML(acc.Term.Rendered),
	}
}

var saoPaulo = loadLocation("America/Sao_Paulo")

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
