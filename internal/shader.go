package internal

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// The whole scene shares one program: per-vertex diffuse lighting from
// a single point light, with an emissive bypass for the star.
const vertexShaderSource = `#version 410 core
in vec3 position;
in vec3 normal;

uniform mat4 projectionMatrix;
uniform mat4 viewMatrix;
uniform mat4 modelMatrix;
uniform vec3 lightPosition;
uniform bool isEmissive;

out float vBrightness;

void main() {
	vec4 world = modelMatrix * vec4(position, 1.0);
	vec3 n = normalize(mat3(modelMatrix) * normal);
	vec3 l = normalize(lightPosition - world.xyz);
	float diffuse = max(dot(n, l), 0.0);
	vBrightness = isEmissive ? 1.0 : 0.15 + 0.85 * diffuse;
	gl_Position = projectionMatrix * viewMatrix * world;
}
`

const fragmentShaderSource = `#version 410 core
uniform vec4 color;

in float vBrightness;
out vec4 fragColor;

void main() {
	fragColor = vec4(color.rgb * vBrightness, color.a);
}
`

// Program wraps a linked shader program together with its attribute
// and uniform locations, resolved by name once at link time and
// consumed by handle thereafter.
type Program struct {
	handle uint32

	Attrib struct {
		Position uint32
		Normal   uint32
	}
	Uniform struct {
		Projection    int32
		View          int32
		Model         int32
		Color         int32
		LightPosition int32
		IsEmissive    int32
	}
}

// CompileProgram compiles and links the vertex/fragment pair and
// resolves every location the draw contract needs. Any failure here is
// fatal to startup.
func CompileProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertex)
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragment)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)
	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(handle)
		return nil, fmt.Errorf("link: %s", programInfoLog(handle))
	}

	program := &Program{handle: handle}
	for _, attrib := range []struct {
		name string
		dst  *uint32
	}{
		{"position", &program.Attrib.Position},
		{"normal", &program.Attrib.Normal},
	} {
		location := gl.GetAttribLocation(handle, gl.Str(attrib.name+"\x00"))
		if location < 0 {
			defer gl.DeleteProgram(handle)
			return nil, fmt.Errorf("attribute %q missing from program", attrib.name)
		}
		*attrib.dst = uint32(location)
	}
	program.Uniform.Projection = gl.GetUniformLocation(handle, gl.Str("projectionMatrix\x00"))
	program.Uniform.View = gl.GetUniformLocation(handle, gl.Str("viewMatrix\x00"))
	program.Uniform.Model = gl.GetUniformLocation(handle, gl.Str("modelMatrix\x00"))
	program.Uniform.Color = gl.GetUniformLocation(handle, gl.Str("color\x00"))
	program.Uniform.LightPosition = gl.GetUniformLocation(handle, gl.Str("lightPosition\x00"))
	program.Uniform.IsEmissive = gl.GetUniformLocation(handle, gl.Str("isEmissive\x00"))
	return program, nil
}

// Use makes the program current for subsequent uniform and draw calls.
func (p *Program) Use() { gl.UseProgram(p.handle) }

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(shader)
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func programInfoLog(handle uint32) string {
	var length int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &length)
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(handle, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
