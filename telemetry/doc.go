// Package telemetry broadcasts committed agent positions/velocities to
// external viewers over a websocket, via gorilla/websocket registered
// on a gorilla/mux router. Visualization is an explicit non-goal of the
// velocity-planning core: this package only gives a host a transport to
// push snapshots out over, and is never imported by orcaline/lp/agent.
package telemetry
