// Package popup describes the secondary windows the site opens for details,
// news, the information system and mail confirmations, and renders the
// scripts and link attributes that open them.
package popup
