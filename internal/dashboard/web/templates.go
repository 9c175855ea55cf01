package web

const tmplLayout = `
{{define "layout"}}<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{margin:0;font-family:system-ui,sans-serif;background:#f5f6f8;color:#1f2328}
a{color:inherit;text-decoration:none}
.shell{display:flex;min-height:100vh}
.sidebar{width:280px;flex-shrink:0;background:#fff;border-right:1px solid #d0d7de;padding:16px}
.sidebar h1{font-size:16px;margin:0 0 12px}
.case-item{display:flex;justify-content:space-between;align-items:center;padding:8px 10px;border-radius:6px;margin-bottom:4px}
.case-item.selected{background:#ddf4ff}
.main{flex:1;padding:24px;min-width:0}
.badge{font-size:11px;padding:2px 8px;border-radius:10px;background:#eaeef2}
.badge.APROBADO,.badge.APPROVED,.badge.OK{background:#dafbe1;color:#116329}
.badge.RECHAZADO,.badge.REJECTED,.badge.FAIL{background:#ffebe9;color:#a40e26}
.badge.EN_REVISION,.badge.REVIEW_REQUIRED,.badge.WARNING{background:#fff8c5;color:#7d4e00}
.card{background:#fff;border:1px solid #d0d7de;border-radius:8px;padding:16px;margin-bottom:16px}
.card h2{font-size:15px;margin:0 0 12px}
.tabs{display:flex;gap:4px;margin:16px 0}
.tabs a{padding:6px 14px;border-radius:6px;background:#eaeef2;font-size:13px}
.tabs a.active{background:#0969da;color:#fff}
.muted{color:#656d76;font-size:13px}
.row{display:flex;justify-content:space-between;padding:4px 0;border-bottom:1px solid #f0f2f4}
.section-toggle{display:block;font-weight:600;margin:10px 0 6px}
.event{border-left:3px solid #d0d7de;padding:4px 10px;margin-bottom:8px}
.event.approval{border-color:#1a7f37}.event.rejection{border-color:#cf222e}
.event.document{border-color:#0969da}.event.validation{border-color:#8250df}
.event.ocr{border-color:#bf8700}.event.comment{border-color:#57606a}
.event.status-change{border-color:#fb8500}
.chips a{font-size:12px;padding:3px 10px;border-radius:12px;background:#eaeef2;margin-right:4px}
.chips a.active{background:#1f2328;color:#fff}
.split{display:flex;gap:16px}.split>div{flex:1}
</style>
</head>
<body>
<div class="shell">
<nav class="sidebar">
  <h1>Casos</h1>
  {{if .ListLoading}}<p class="muted">Cargando casos...</p>{{end}}
  {{range .Cases}}
  <a class="case-item{{if .Selected}} selected{{end}}" href="/cases/{{.ID}}">
    <span>{{.Name}}<br><span class="muted">#{{.ID}}</span></span>
    <span class="badge {{.Status}}">{{.StatusLabel}}</span>
  </a>
  {{end}}
</nav>
<main class="main">
{{template "content" .}}
</main>
</div>
</body>
</html>
{{end}}
`

const tmplIndex = `
{{define "content"}}
<div class="card"><p class="muted">Seleccioná un caso de la lista para ver su detalle.</p></div>
{{end}}
`

const tmplCase = `
{{define "content"}}
{{with .Dashboard}}
{{if .Message}}
<div class="card"><p class="muted">{{.Message}}</p></div>
{{else}}
<header>
  <h1 style="margin:0">{{.Name}}</h1>
  <span class="badge">{{.StatusLabel}}</span>
  {{if .Open}}<span class="muted" title="Caso pendiente">&#9719; pendiente</span>{{end}}
</header>
<nav class="tabs">
  {{range .Tabs}}<a class="{{if .Active}}active{{end}}" href="{{$.Links.Tab .Label}}">{{.Label}}</a>{{end}}
</nav>
{{if .Explainability}}{{template "summary" $}}{{end}}
{{with .Details}}{{template "details" $}}{{end}}
{{with .History}}{{template "history" $}}{{end}}
{{end}}
{{end}}
{{end}}

{{define "summary"}}
{{$d := .Dashboard}}
<div class="split">
<div>
  <div class="card">
    <h2>{{$d.CaseData.Title}}</h2>
    {{range $d.CaseData.Rows}}<div class="row"><span>{{.Label}}</span><span>{{.Icon}}</span></div>{{end}}
  </div>
  {{with $d.Pending}}
  <div class="card">
    <h2>{{.Title}}</h2>
    {{range .Items}}
    <div class="row">
      <span>{{icon .Icon}} <b>{{.Title}}</b><br><span class="muted">{{.Detail}}</span>{{if .DueDate}}<br><span class="muted">{{.DueDate}}</span>{{end}}</span>
      <span class="badge">{{.Badge}}</span>
    </div>
    {{else}}<p class="muted">{{.EmptyMessage}}</p>{{end}}
  </div>
  {{end}}
  {{template "tasks" .}}
</div>
<div>{{template "explainability" .}}</div>
</div>
{{end}}

{{define "tasks"}}
{{$t := .Dashboard.Tasks}}
<div class="card">
  <h2>{{$t.Title}}</h2>
  {{if $t.Closed}}
    {{range $t.Completed}}<div class="row"><span>{{.Mark}} {{.Title}}</span><span class="muted">{{.Timestamp}}</span></div>{{end}}
    {{with $t.HistoryEmpty}}<p class="muted">{{.}}</p>{{end}}
  {{else}}
    <h3 style="font-size:13px">Pendientes</h3>
    {{range $t.Pending}}<div class="row"><span>{{.Mark}} {{.Title}}</span></div>{{end}}
    {{with $t.PendingEmpty}}<p class="muted">{{.}}</p>{{end}}
    {{if $t.Completed}}
    <a class="section-toggle" href="{{.Links.ToggleCompleted}}">{{$t.CompletedTitle}}</a>
    {{range $t.VisibleCompleted}}<div class="row"><span>{{.Mark}} {{.Title}}</span><span class="muted">{{.Timestamp}}</span></div>{{end}}
    {{end}}
    {{with $t.AllEmpty}}<p class="muted">{{.}}</p>{{end}}
  {{end}}
</div>
{{end}}

{{define "explainability"}}
{{$e := .Dashboard.Explainability}}
<div class="card">
  <h2>{{$e.Title}}</h2>
  {{if $e.Message}}
  <p class="muted">{{$e.Message}}</p>
  {{else}}
  <a class="muted" href="{{.Links.Summary}}">Copiar resumen</a>

  <a class="section-toggle" href="{{.Links.ToggleSection "summary"}}">Resumen</a>
  {{if $e.SummaryOpen}}
  <div class="row"><span>Estado</span><span class="badge {{$e.Status}}">{{$e.StatusLabel}}</span></div>
  <div class="row"><span>Última evaluación</span><span>{{$e.LastEvaluation}}</span></div>
  <div class="row"><span>Fuente</span><span>{{$e.Source}}</span></div>
  {{end}}

  <a class="section-toggle" href="{{.Links.ToggleSection "validations"}}">Validaciones automáticas</a>
  {{if $e.ValidationsOpen}}
  {{range $e.Validations}}
  <div class="event">
    <b>{{.Icon}} {{.Name}}</b> <span class="muted">{{.Message}}</span>
    {{if .Rule}}<br><code>{{.Rule}}</code><br><span class="muted">{{.Explanation}}</span>{{end}}
    {{if .HasEvidence}}<br><span class="muted">{{.EvidenceField}}: {{.EvidenceValue}}</span>{{end}}
  </div>
  {{end}}
  {{with $e.ValidationsEmpty}}<p class="muted">{{.}}</p>{{end}}
  {{end}}

  <a class="section-toggle" href="{{.Links.ToggleSection "ocr"}}">Datos detectados (OCR)</a>
  {{if $e.OCROpen}}
  {{range $e.OCRFields}}<div class="row"><span>{{.Field}}</span><span>{{.Value}}</span></div>{{end}}
  {{with $e.OCREmpty}}<p class="muted">{{.}}</p>{{end}}
  {{end}}

  {{with $e.Decision}}
  <a class="section-toggle" href="{{$.Links.ToggleSection "decision"}}">Justificación de decisión</a>
  {{if $e.DecisionOpen}}
  <p><b>{{.Icon}} {{.Label}}</b></p>
  {{range .Rules}}<div class="row"><code>{{.}}</code></div>{{end}}
  {{range .Evidence}}<div class="row muted">{{.}}</div>{{end}}
  {{end}}
  {{else}}
  <p class="muted">{{$e.ManualNotice}}</p>
  {{end}}
  {{end}}
</div>
{{end}}

{{define "details"}}
{{$v := .Dashboard.Details}}
<div class="card">
  {{if $v.Message}}
  <p class="muted">{{$v.Message}}</p>
  {{else}}
  <div class="split">
    <div>
      {{range $v.Documents}}
      <a class="case-item{{if .Selected}} selected{{end}}" href="{{$.Links.Document .ID}}">
        <span>{{.Name}}<br><span class="muted">{{.SourceLabel}} · {{.UpdatedAt}}</span></span>
        <span class="badge {{.Status}}">{{.StatusLabel}}</span>
      </a>
      {{end}}
    </div>
    {{with $v.Selected}}
    <div>
      <h2>{{.FileName}}</h2>
      <p class="muted">{{.SourceLabel}}</p>
      {{range .Fields}}<div class="row"><span>{{.Key}}</span><span>{{.Value}}</span></div>{{end}}
      <h3 style="font-size:13px">Validaciones</h3>
      {{range .Validations}}
      <div class="event">
        <a href="{{$.Links.Validation .ID}}"><b>{{.Icon}} {{.Name}}</b></a> <span class="badge {{.ResultLabel}}">{{.ResultLabel}}</span>
        <br><code>{{.Rule}}</code>
        <br><span class="muted">{{.Evidence}}</span>
        <br><span class="muted">{{.Impact}}</span>
        {{if .Expanded}}<p>{{.Details}}</p>{{end}}
      </div>
      {{end}}
      {{with .ValidationsEmpty}}<p class="muted">{{.}}</p>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}

{{define "history"}}
{{$h := .Dashboard.History}}
<div class="card">
  {{if $h.Message}}
  <p class="muted">{{$h.Message}}</p>
  {{else}}
  <h2>{{$h.Title}}</h2>
  <div class="chips">
    {{range $h.Filters}}<a class="{{if .Active}}active{{end}}" href="{{$.Links.Actor (printf "%s" .Filter)}}">{{.Label}}</a>{{end}}
  </div>
  {{range $h.Events}}
  <div class="event {{.Category}}">
    <a href="{{$.Links.Event .ID}}"><b>{{.Type}}</b></a>
    <span class="muted">{{.Date}} {{.Time}} · {{.ActorLabel}}</span>
    <br>{{.Summary}}
    {{if .Expanded}}
    <p>{{.Details}}</p>
    {{with .RelatedDocument}}<p class="muted">{{.}}</p>{{end}}
    {{end}}
  </div>
  {{end}}
  {{with $h.ShowMore}}<a href="{{$.Links.ShowAll true}}">{{.}}</a>{{end}}
  {{with $h.ShowLess}}<a href="{{$.Links.ShowAll false}}">{{.}}</a>{{end}}
  {{end}}
</div>
{{end}}
`
