package templates

// embeddedTemplateBase64 is the last-resort report template shipped with the
// application. It must always decode to a valid, non-empty archive;
// NewResolver refuses to construct a resolver from a corrupt constant.
const embeddedTemplateBase64 = `
UEsDBBQAAAAAAAAAIVjJTxqwrgEAAK4BAAATAAAAW0NvbnRlbnRfVHlwZXNdLnhtbDw/eG1sIHZl
cnNpb249IjEuMCIgZW5jb2Rpbmc9IlVURi04IiBzdGFuZGFsb25lPSJ5ZXMiPz4KPFR5cGVzIHht
bG5zPSJodHRwOi8vc2NoZW1hcy5vcGVueG1sZm9ybWF0cy5vcmcvcGFja2FnZS8yMDA2L2NvbnRl
bnQtdHlwZXMiPjxEZWZhdWx0IEV4dGVuc2lvbj0icmVscyIgQ29udGVudFR5cGU9ImFwcGxpY2F0
aW9uL3ZuZC5vcGVueG1sZm9ybWF0cy1wYWNrYWdlLnJlbGF0aW9uc2hpcHMreG1sIi8+PERlZmF1
bHQgRXh0ZW5zaW9uPSJ4bWwiIENvbnRlbnRUeXBlPSJhcHBsaWNhdGlvbi94bWwiLz48T3ZlcnJp
ZGUgUGFydE5hbWU9Ii93b3JkL2RvY3VtZW50LnhtbCIgQ29udGVudFR5cGU9ImFwcGxpY2F0aW9u
L3ZuZC5vcGVueG1sZm9ybWF0cy1vZmZpY2Vkb2N1bWVudC53b3JkcHJvY2Vzc2luZ21sLmRvY3Vt
ZW50Lm1haW4reG1sIi8+PC9UeXBlcz5QSwMEFAAAAAAAAAAhWLmBRHEqAQAAKgEAAAsAAABfcmVs
cy8ucmVsczw/eG1sIHZlcnNpb249IjEuMCIgZW5jb2Rpbmc9IlVURi04IiBzdGFuZGFsb25lPSJ5
ZXMiPz4KPFJlbGF0aW9uc2hpcHMgeG1sbnM9Imh0dHA6Ly9zY2hlbWFzLm9wZW54bWxmb3JtYXRz
Lm9yZy9wYWNrYWdlLzIwMDYvcmVsYXRpb25zaGlwcyI+PFJlbGF0aW9uc2hpcCBJZD0icklkMSIg
VHlwZT0iaHR0cDovL3NjaGVtYXMub3BlbnhtbGZvcm1hdHMub3JnL29mZmljZURvY3VtZW50LzIw
MDYvcmVsYXRpb25zaGlwcy9vZmZpY2VEb2N1bWVudCIgVGFyZ2V0PSJ3b3JkL2RvY3VtZW50Lnht
bCIvPjwvUmVsYXRpb25zaGlwcz5QSwMEFAAAAAAAAAAhWNbeDPZ8AgAAfAIAABEAAAB3b3JkL2Rv
Y3VtZW50LnhtbDw/eG1sIHZlcnNpb249IjEuMCIgZW5jb2Rpbmc9IlVURi04IiBzdGFuZGFsb25l
PSJ5ZXMiPz4KPHc6ZG9jdW1lbnQgeG1sbnM6dz0iaHR0cDovL3NjaGVtYXMub3BlbnhtbGZvcm1h
dHMub3JnL3dvcmRwcm9jZXNzaW5nbWwvMjAwNi9tYWluIj48dzpib2R5Pjx3OnA+PHc6cj48dzp0
Pk1pc3Npb24gcmVwb3J0PC93OnQ+PC93OnI+PC93OnA+PHc6cD48dzpyPjx3OnQ+VGl0bGU6ICh0
aXRsZSk8L3c6dD48L3c6cj48L3c6cD48dzpwPjx3OnI+PHc6dD5Mb2NhdGlvbjogKGxvY2F0aW9u
KTwvdzp0PjwvdzpyPjwvdzpwPjx3OnA+PHc6cj48dzp0PkZyb20gKGRhdGUpIHRvIChmaW5pc2hE
YXRlKTwvdzp0PjwvdzpyPjwvdzpwPjx3OnA+PHc6cj48dzp0PkhvdXJzOiAoc3RhcnRUaW1lKSAt
IChmaW5pc2hUaW1lKTwvdzp0PjwvdzpyPjwvdzpwPjx3OnA+PHc6cj48dzp0PntpZiBub3Rlc31O
b3Rlczoge25vdGVzfXsvaWZ9PC93OnQ+PC93OnI+PC93OnA+PHc6cD48dzpyPjx3OnQ+UmVwb3J0
ZXI6IChmdWxsTmFtZSksIChwcm9mZXNzaW9uKTwvdzp0PjwvdzpyPjwvdzpwPjx3OnA+PHc6cj48
dzp0PkNOSTogKGNuaSkgUFBOOiAocHBuKTwvdzp0PjwvdzpyPjwvdzpwPjx3OnNlY3RQci8+PC93
OmJvZHk+PC93OmRvY3VtZW50PlBLAQIUAxQAAAAAAAAAIVjJTxqwrgEAAK4BAAATAAAAAAAAAAAA
AACAAQAAAABbQ29udGVudF9UeXBlc10ueG1sUEsBAhQDFAAAAAAAAAAhWLmBRHEqAQAAKgEAAAsA
AAAAAAAAAAAAAIAB3wEAAF9yZWxzLy5yZWxzUEsBAhQDFAAAAAAAAAAhWNbeDPZ8AgAAfAIAABEA
AAAAAAAAAAAAAIABMgMAAHdvcmQvZG9jdW1lbnQueG1sUEsFBgAAAAADAAMAuQAAAN0FAAAAAA==
`
