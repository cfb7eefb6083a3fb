// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"bytes"
	"fmt"
	"html/template"
)

var emailTemplate = template.Must(template.New("term-email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #FF6B00; text-align: center;">BarberSoft</h1>
  <h2 style="text-align: center;">{{.Title}}</h2>
  <p>Olá, <strong>{{.BarberName}}</strong>!</p>
  <p>Segue abaixo o termo de parceria da sua barbearia. Para formalizar sua participação, leia o termo e clique no botão abaixo para aceitar.</p>
  <div style="background-color: #f8f8f8; border-radius: 8px; padding: 20px; margin: 20px 0; border: 1px solid #eee;">
    <p style="font-size: 12px; color: #666; margin-bottom: 10px;">Versão {{.Version}}</p>
    <div style="font-size: 14px; line-height: 1.6;">{{.Content}}</div>
  </div>
  <div style="text-align: center; margin: 30px 0;">
    <a href="{{.AcceptURL}}" style="display: inline-block; background-color: #FF6B00; color: #ffffff; padding: 16px 40px; border-radius: 8px; text-decoration: none; font-weight: bold; font-size: 18px;">Aceitar Termo de Parceria</a>
  </div>
  <p style="font-size: 13px; color: #666; text-align: center;">Ao clicar no botão acima, você será direcionado para a página de aceite digital do termo.</p>
  <p style="font-size: 13px; color: #666;"><strong>Importante:</strong> Sua comissão acordada é de <strong>{{.Commission}}</strong>. O aceite do termo é necessário para ativar sua agenda no sistema.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;" />
  <p style="color: #999; font-size: 11px; text-align: center;">BarberSoft - Sistema de Gestão para Barbearias</p>
</div>
`))

type emailData struct {
	Title      string
	BarberName string
	Version    string
	Commission string
	AcceptURL  string
	// Content was sanitized by Render
	Content template.HTML
}

func renderEmail(data emailData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render term email: %w", err)
	}
	return buf.String(), nil
}
