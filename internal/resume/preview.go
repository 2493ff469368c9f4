package resume

import (
	"bytes"
	"html/template"
)

// RenderPreview renders the document as print-ready HTML. Printing that
// page is the export path; no native file format is produced.
func RenderPreview(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var previewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .PersonalInfo.FullName}}{{.PersonalInfo.FullName}}{{else}}Resume{{end}}</title>
<style>
  body { font-family: Georgia, "Times New Roman", serif; color: #1f2937; max-width: 800px; margin: 0 auto; padding: 48px 32px; }
  header { border-bottom: 2px solid #1f2937; padding-bottom: 16px; margin-bottom: 24px; }
  h1 { margin: 0; font-size: 28px; text-transform: uppercase; letter-spacing: 1px; }
  .role { font-size: 16px; color: #4b5563; margin: 4px 0 0; }
  .contacts { margin-top: 12px; font-size: 13px; color: #4b5563; }
  .contacts span + span::before { content: "\2022"; margin: 0 8px; }
  section { margin-bottom: 24px; }
  h3 { font-size: 13px; text-transform: uppercase; letter-spacing: 1.5px; border-bottom: 1px solid #d1d5db; padding-bottom: 4px; margin: 0 0 8px; }
  .entry { margin-bottom: 12px; }
  .entry-head { display: flex; justify-content: space-between; align-items: baseline; }
  .entry-head h4 { margin: 0; font-size: 14px; }
  .entry-head .dates { font-size: 12px; color: #6b7280; }
  .desc { font-size: 13px; margin: 4px 0 0; white-space: pre-line; color: #374151; }
  .skills dt { font-weight: bold; float: left; width: 140px; font-size: 13px; }
  .skills dd { margin: 0 0 4px 140px; font-size: 13px; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
<header>
  <h1>{{if .PersonalInfo.FullName}}{{.PersonalInfo.FullName}}{{else}}YOUR NAME{{end}}</h1>
  <p class="role">{{if .PersonalInfo.Role}}{{.PersonalInfo.Role}}{{else}}Desired Role{{end}}</p>
  <div class="contacts">
    {{if .PersonalInfo.Email}}<span>{{.PersonalInfo.Email}}</span>{{end}}
    {{if .PersonalInfo.Phone}}<span>{{.PersonalInfo.Phone}}</span>{{end}}
    {{if .PersonalInfo.LinkedIn}}<span>{{.PersonalInfo.LinkedIn}}</span>{{end}}
    {{if .PersonalInfo.GitHub}}<span>{{.PersonalInfo.GitHub}}</span>{{end}}
    {{if .PersonalInfo.Portfolio}}<span>{{.PersonalInfo.Portfolio}}</span>{{end}}
  </div>
</header>

{{if .Summary}}
<section>
  <h3>Professional Summary</h3>
  <p class="desc">{{.Summary}}</p>
</section>
{{end}}

{{if .WorkExperience}}
<section>
  <h3>Work Experience</h3>
  {{range .WorkExperience}}
  <div class="entry">
    <div class="entry-head">
      <h4>{{.Company}}{{if .Designation}} - {{.Designation}}{{end}}</h4>
      <span class="dates">{{.Duration}}</span>
    </div>
    <p class="desc">{{.Description}}</p>
  </div>
  {{end}}
</section>
{{end}}

{{if .Projects}}
<section>
  <h3>Projects</h3>
  {{range .Projects}}
  <div class="entry">
    <div class="entry-head">
      <h4>{{.Title}}</h4>
      <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
    </div>
    <p class="desc">{{.Description}}</p>
  </div>
  {{end}}
</section>
{{end}}

{{if or .Skills.Languages .Skills.Frameworks .Skills.Tools}}
<section>
  <h3>Technical Skills</h3>
  <dl class="skills">
    {{if .Skills.Languages}}<dt>Languages:</dt><dd>{{.Skills.Languages}}</dd>{{end}}
    {{if .Skills.Frameworks}}<dt>Tools/Frameworks:</dt><dd>{{.Skills.Frameworks}}</dd>{{end}}
    {{if .Skills.Tools}}<dt>Other Tools:</dt><dd>{{.Skills.Tools}}</dd>{{end}}
  </dl>
</section>
{{end}}

{{if .Education}}
<section>
  <h3>Education</h3>
  {{range .Education}}
  <div class="entry">
    <div class="entry-head">
      <h4>{{.Institution}}</h4>
      <span class="dates">{{.StartYear}} - {{.EndYear}}</span>
    </div>
    <p class="desc">{{.Degree}}{{if .Specialization}} in {{.Specialization}}{{end}}{{if .Score}} (Score: {{.Score}}){{end}}{{if .Location}}, {{.Location}}{{end}}</p>
  </div>
  {{end}}
</section>
{{end}}

{{if .Certifications}}
<section>
  <h3>Certifications</h3>
  {{range .Certifications}}
  <div class="entry">
    <div class="entry-head">
      <h4>{{.Title}}</h4>
    </div>
    {{if .IssuedBy}}<p class="desc">Issued by {{.IssuedBy}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}
</body>
</html>
`))
