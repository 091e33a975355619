// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package mail

import "fmt"

func OrgInvitationEmail(orgName, acceptLink string) (subject, body string) {
	subject = fmt.Sprintf("You have been invited to join %s", orgName)
	body = fmt.Sprintf(`<p>You have been invited to join the organization <strong>%s</strong>.</p>
<p><a href="%s">Accept invitation</a></p>
<p>The invitation expires in 7 days.</p>`, orgName, acceptLink)
	return subject, body
}

func ProjectInvitationEmail(projectName, inboxLink string) (subject, body string) {
	subject = fmt.Sprintf("You have been invited to the project %s", projectName)
	body = fmt.Sprintf(`<p>You have been invited to join the project <strong>%s</strong>.</p>
<p><a href="%s">View your invitations</a></p>
<p>The invitation expires in 7 days.</p>`, projectName, inboxLink)
	return subject, body
}

func OTPEmail(code string) (subject, body string) {
	subject = "Your verification code"
	body = fmt.Sprintf(`<p>Your verification code is:</p>
<p style="font-size:24px;letter-spacing:4px;"><strong>%s</strong></p>
<p>The code expires in 10 minutes.</p>`, code)
	return subject, body
}
