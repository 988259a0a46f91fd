// Package preflight provides readiness checks for the mkvmerge binary and the
// output location.
//
// These checks run in two contexts:
//   - The session calls RunOutput after the output path is chosen and before
//     mkvmerge starts. Failures are shown as warnings; mkvmerge still decides.
//   - The CLI "mkvedit check" command uses CheckSystemDeps and
//     CheckDirectoryAccess to print a readiness report.
//
// Output checks are gated by the output.preflight config toggle.
package preflight
