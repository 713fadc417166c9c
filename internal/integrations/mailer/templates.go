package mailer

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

const confirmationSubject = "Confirmación de cita | Fideslex"

var confirmationText = texttemplate.Must(texttemplate.New("text").Parse(
	`Hola {{.ClientName}},

Tu cita para {{.ServiceName}} ha sido registrada correctamente.
Fecha: {{.Date}}
Horario: {{.Start}} – {{.End}}
Asesor: {{.AdvisorName}}
{{- with .Credentials}}

Hemos creado una cuenta para ti.
Usuario: {{.Login}}
Contraseña temporal: {{.Password}}
Inicia sesión en {{$.SignInURL}} y cámbiala por seguridad.
{{- end}}

Si necesitas reprogramar o cancelar, responde a este correo o visita tu panel.

Gracias,
Equipo Fideslex`))

var confirmationHTML = htmltemplate.Must(htmltemplate.New("html").Parse(`
<div style="background:#ffffff;padding:32px 0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#000000;">
  <div style="max-width:600px;margin:0 auto;padding:0 24px;">
    <header style="padding-bottom:16px;">
      <div style="font-weight:600;font-size:20px;">Fideslex</div>
    </header>
    <main style="background:#fafafa;border:1px solid #eee;border-radius:14px;padding:24px;">
      <h1 style="margin:0 0 12px;font-size:22px;font-weight:700;">Tu cita está confirmada</h1>
      <p style="margin:0 0 16px;font-size:15px;color:#555;">Hola {{.ClientName}}, tu cita para <strong>{{.ServiceName}}</strong> ha sido registrada correctamente.</p>
      <div style="font-size:15px;color:#333;">
        <div><strong>Fecha:</strong> {{.Date}}</div>
        <div><strong>Horario:</strong> {{.Start}} – {{.End}}</div>
        <div><strong>Asesor:</strong> {{.AdvisorName}}</div>
      </div>
      {{- with .Credentials}}
      <div style="border-top:1px solid #eaeaea;margin:16px 0"></div>
      <h2 style="margin:0 0 8px;font-size:18px;font-weight:600">Tu cuenta fue creada</h2>
      <div style="font-size:14px;color:#333;">
        <div><strong>Usuario:</strong> {{.Login}}</div>
        <div><strong>Contraseña temporal:</strong> {{.Password}}</div>
      </div>
      <p style="margin:12px 0;font-size:14px;color:#555;">Por seguridad, te recomendamos iniciar sesión y cambiar tu contraseña.</p>
      <a href="{{$.SignInURL}}" style="display:inline-block;background:#111;color:#fff;text-decoration:none;padding:8px 14px;border-radius:10px;font-size:14px;">Iniciar sesión</a>
      {{- end}}
      <div style="border-top:1px solid #eaeaea;margin:16px 0"></div>
      <a href="{{.DashboardURL}}" style="display:inline-block;background:#000;color:#fff;text-decoration:none;padding:10px 16px;border-radius:10px;font-size:14px;">Ir al panel</a>
    </main>
    <footer style="padding-top:16px;color:#777;font-size:12px;">
      <div>Este mensaje se envió a {{.To}}. No respondas si no esperabas esta confirmación.</div>
    </footer>
  </div>
</div>`))
